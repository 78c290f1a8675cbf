package dto

import "github.com/benho/store-management/internal/domain"

type ProductResponse struct {
	ID          int64   `json:"id"`
	ExternalID  string  `json:"external_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int64   `json:"quantity"`
	Category    string  `json:"category"`
	PhotoURL    *string `json:"photo_url"`
	CreatedAt   int64   `json:"created_at"`
	UpdatedAt   int64   `json:"updated_at"`
}

func FromProduct(product domain.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		ExternalID:  product.ExternalID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Quantity:    product.Quantity,
		Category:    product.Category,
		PhotoURL:    product.PhotoURL,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}
