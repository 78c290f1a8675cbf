package service

import (
	"context"

	"github.com/benho/store-management/internal/dto"
)

type ProductService interface {
	GetProducts(ctx context.Context) (res []dto.ProductResponse, err error)
	GetProductByID(ctx context.Context, id int64) (res dto.ProductResponse, err error)
	GetProductsByCategory(ctx context.Context, category string) (res []dto.ProductResponse, err error)
	AddProduct(ctx context.Context, req dto.ProductRequest, photo *dto.PhotoUpload) (res dto.ProductResponse, err error)
	UpdateProduct(ctx context.Context, id int64, req dto.ProductRequest, photo *dto.PhotoUpload) (res dto.ProductResponse, err error)
	DeleteProduct(ctx context.Context, id int64) (err error)
}

// EventPublisher pushes product change events to the message broker.
// Publishing is best-effort; the service logs failures and moves on.
type EventPublisher interface {
	Publish(msg []byte) error
}
