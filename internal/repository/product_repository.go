package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/benho/store-management/internal/domain"
	"github.com/benho/store-management/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type ProductRepositoryImpl struct {
	db *sqlx.DB
}

func CreateNewRepository(db *sqlx.DB) ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

func (r *ProductRepositoryImpl) FindAll(ctx context.Context) (data []domain.Product, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT * FROM products ORDER BY id")
	if err != nil {
		log.Error().Err(err).Str("component", "FindAll").Msg("")
		return nil, errs.ErrInternalServer
	}

	return
}

func (r *ProductRepositoryImpl) FindByID(ctx context.Context, id int64) (data domain.Product, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM products WHERE id = $1", id)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, nil
		}
		log.Error().Err(err).Str("component", "FindByID").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *ProductRepositoryImpl) FindByCategory(ctx context.Context, category string) (data []domain.Product, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT * FROM products WHERE category = $1 ORDER BY id", category)
	if err != nil {
		log.Error().Err(err).Str("component", "FindByCategory").Msg("")
		return nil, errs.ErrInternalServer
	}

	return
}

func (r *ProductRepositoryImpl) Add(ctx context.Context, data domain.Product) (id int64, err error) {
	timestamp := time.Now().UnixMilli()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp

	nstmt, err := r.db.PrepareNamedContext(ctx, "INSERT INTO products(external_id, name, description, price, quantity, category, photo_url, created_at, updated_at) VALUES (:external_id, :name, :description, :price, :quantity, :category, :photo_url, :created_at, :updated_at) RETURNING id")
	if err != nil {
		log.Error().Err(err).Str("component", "Add").Msg("")
		return 0, errs.ErrInternalServer
	}
	defer nstmt.Close()

	err = nstmt.GetContext(ctx, &id, data)
	if err != nil {
		log.Error().Err(err).Str("component", "Add").Msg("")
		return 0, errs.ErrInternalServer
	}

	return
}

// Update overwrites every mutable column. created_at is never touched so the
// creation timestamp survives all subsequent writes.
func (r *ProductRepositoryImpl) Update(ctx context.Context, data domain.Product) (err error) {
	data.UpdatedAt = time.Now().UnixMilli()

	_, err = r.db.NamedExecContext(ctx, "UPDATE products SET name=:name, description=:description, price=:price, quantity=:quantity, category=:category, photo_url=:photo_url, updated_at=:updated_at WHERE id=:id", data)
	if err != nil {
		log.Error().Err(err).Str("component", "Update").Msg("")
		return errs.ErrInternalServer
	}

	return
}

func (r *ProductRepositoryImpl) DeleteByID(ctx context.Context, id int64) (err error) {
	_, err = r.db.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteByID").Msg("")
		return errs.ErrInternalServer
	}

	return
}
