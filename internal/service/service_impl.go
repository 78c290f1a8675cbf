package service

import (
	"context"
	"encoding/json"

	"github.com/benho/store-management/internal/domain"
	"github.com/benho/store-management/internal/dto"
	"github.com/benho/store-management/internal/infrastructure/filestorage"
	"github.com/benho/store-management/internal/repository"
	"github.com/benho/store-management/pkg/errs"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
)

type ServiceImpl struct {
	repo      repository.ProductRepository
	storage   filestorage.FileStorage
	publisher EventPublisher
}

func CreateNewService(repo repository.ProductRepository, storage filestorage.FileStorage, publisher EventPublisher) ProductService {
	return &ServiceImpl{repo: repo, storage: storage, publisher: publisher}
}

func (s *ServiceImpl) GetProducts(ctx context.Context) (res []dto.ProductResponse, err error) {
	data, err := s.repo.FindAll(ctx)
	if err != nil {
		return
	}

	res = make([]dto.ProductResponse, 0, len(data))
	for _, product := range data {
		res = append(res, dto.FromProduct(product))
	}

	return
}

func (s *ServiceImpl) GetProductByID(ctx context.Context, id int64) (res dto.ProductResponse, err error) {
	data, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return
	}

	if data.ID == 0 {
		return res, errs.ErrProductNotFound
	}

	return dto.FromProduct(data), nil
}

func (s *ServiceImpl) GetProductsByCategory(ctx context.Context, category string) (res []dto.ProductResponse, err error) {
	data, err := s.repo.FindByCategory(ctx, category)
	if err != nil {
		return
	}

	res = make([]dto.ProductResponse, 0, len(data))
	for _, product := range data {
		res = append(res, dto.FromProduct(product))
	}

	return
}

func (s *ServiceImpl) AddProduct(ctx context.Context, req dto.ProductRequest, photo *dto.PhotoUpload) (res dto.ProductResponse, err error) {
	var photoURL *string
	if photo != nil && len(photo.Content) > 0 {
		// A failed upload aborts the create; no product row is written
		// with a dangling photo reference.
		storedName, err := s.storage.Save(photo.Content, photo.Filename)
		if err != nil {
			return res, err
		}
		photoURL = &storedName
	}

	product := domain.Product{
		ExternalID:  ulid.Make().String(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Category:    req.Category,
		PhotoURL:    photoURL,
	}

	id, err := s.repo.Add(ctx, product)
	if err != nil {
		return
	}

	created, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return
	}

	res = dto.FromProduct(created)
	s.publishEvent("product_created", res)

	return res, nil
}

func (s *ServiceImpl) UpdateProduct(ctx context.Context, id int64, req dto.ProductRequest, photo *dto.PhotoUpload) (res dto.ProductResponse, err error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return
	}

	if product.ID == 0 {
		return res, errs.ErrProductNotFound
	}

	if photo != nil && len(photo.Content) > 0 {
		if product.PhotoURL != nil {
			s.storage.Delete(*product.PhotoURL)
		}
		storedName, err := s.storage.Save(photo.Content, photo.Filename)
		if err != nil {
			return res, err
		}
		product.PhotoURL = &storedName
	}

	// Full overwrite: every scalar field is taken from the request,
	// partial updates are not supported.
	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.Quantity = req.Quantity
	product.Category = req.Category

	if err = s.repo.Update(ctx, product); err != nil {
		return
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return
	}

	res = dto.FromProduct(updated)
	s.publishEvent("product_updated", res)

	return res, nil
}

func (s *ServiceImpl) DeleteProduct(ctx context.Context, id int64) (err error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return
	}

	if product.ID == 0 {
		return errs.ErrProductNotFound
	}

	// Photo first: a crash between the two leaves an orphaned file rather
	// than a product row pointing at a missing file.
	if product.PhotoURL != nil {
		s.storage.Delete(*product.PhotoURL)
	}

	if err = s.repo.DeleteByID(ctx, id); err != nil {
		return
	}

	s.publishEvent("product_deleted", dto.FromProduct(product))

	return nil
}

func (s *ServiceImpl) publishEvent(eventType string, data interface{}) {
	if s.publisher == nil {
		return
	}

	msg, err := json.Marshal(dto.KafkaMessage{EventType: eventType, Data: data})
	if err != nil {
		log.Error().Err(err).Str("component", "publishEvent").Msg("")
		return
	}

	if err := s.publisher.Publish(msg); err != nil {
		log.Error().Err(err).Str("component", "publishEvent").Str("event_type", eventType).Msg("")
	}
}
