package dto

import "github.com/benho/store-management/pkg/response"

const maxDescriptionLength = 1000

type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int64   `json:"quantity"`
	Category    string  `json:"category"`
}

// PhotoUpload carries the optional photo part of a multipart request. A nil
// pointer means the caller did not submit a photo at all.
type PhotoUpload struct {
	Filename string
	Content  []byte
}

func (r ProductRequest) Validate() []response.ValidationError {
	var validationErrors []response.ValidationError

	if r.Name == "" {
		validationErrors = append(validationErrors, response.ValidationError{Field: "name", Tag: "required"})
	}
	if r.Category == "" {
		validationErrors = append(validationErrors, response.ValidationError{Field: "category", Tag: "required"})
	}
	if r.Price < 0 {
		validationErrors = append(validationErrors, response.ValidationError{Field: "price", Tag: "gte"})
	}
	if r.Quantity < 0 {
		validationErrors = append(validationErrors, response.ValidationError{Field: "quantity", Tag: "gte"})
	}
	if len(r.Description) > maxDescriptionLength {
		validationErrors = append(validationErrors, response.ValidationError{Field: "description", Tag: "max"})
	}

	return validationErrors
}
