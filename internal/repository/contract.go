package repository

import (
	"context"

	"github.com/benho/store-management/internal/domain"
)

type ProductRepository interface {
	FindAll(ctx context.Context) (data []domain.Product, err error)
	FindByID(ctx context.Context, id int64) (data domain.Product, err error)
	FindByCategory(ctx context.Context, category string) (data []domain.Product, err error)
	Add(ctx context.Context, data domain.Product) (id int64, err error)
	Update(ctx context.Context, data domain.Product) (err error)
	DeleteByID(ctx context.Context, id int64) (err error)
}
