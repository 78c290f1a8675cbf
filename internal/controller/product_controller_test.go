package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/benho/store-management/internal/controller"
	"github.com/benho/store-management/internal/domain"
	"github.com/benho/store-management/internal/dto"
	"github.com/benho/store-management/internal/infrastructure/filestorage"
	"github.com/benho/store-management/internal/service"
	"github.com/benho/store-management/pkg/response"
	"github.com/benho/store-management/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret"

type memoryRepository struct {
	seq      int64
	products map[int64]domain.Product
}

func (r *memoryRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	data := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		data = append(data, p)
	}
	sort.Slice(data, func(i, j int) bool { return data[i].ID < data[j].ID })
	return data, nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	return r.products[id], nil
}

func (r *memoryRepository) FindByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	var data []domain.Product
	for _, p := range r.products {
		if p.Category == category {
			data = append(data, p)
		}
	}
	return data, nil
}

func (r *memoryRepository) Add(ctx context.Context, data domain.Product) (int64, error) {
	r.seq++
	data.ID = r.seq
	timestamp := time.Now().UnixMilli()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp
	r.products[data.ID] = data
	return data.ID, nil
}

func (r *memoryRepository) Update(ctx context.Context, data domain.Product) error {
	existing := r.products[data.ID]
	data.CreatedAt = existing.CreatedAt
	r.products[data.ID] = data
	return nil
}

func (r *memoryRepository) DeleteByID(ctx context.Context, id int64) error {
	delete(r.products, id)
	return nil
}

func setupServer(t *testing.T) (*echo.Echo, *filestorage.DiskStorage) {
	t.Helper()

	storage := filestorage.CreateNewDiskStorage(t.TempDir())
	repo := &memoryRepository{products: map[int64]domain.Product{}}
	svc := service.CreateNewService(repo, storage, nil)

	e := echo.New()
	g := e.Group("/api/v1")

	isLoggedIn := middleware.JWTWithConfig(middleware.JWTConfig{
		SigningKey: []byte(testJWTSecret),
		ErrorHandlerWithContext: func(err error, c echo.Context) error {
			return c.JSON(http.StatusUnauthorized, map[string]interface{}{
				"status":  "error",
				"message": "Invalid or expired JWT",
				"errors":  nil,
			})
		},
	})

	controller.CreateProductController(g, svc, isLoggedIn)
	controller.CreateFileController(g, storage)

	return e, storage
}

func authToken(t *testing.T) string {
	t.Helper()
	token, err := utils.CreateJWTToken(1, "tester", testJWTSecret)
	require.NoError(t, err)
	return token
}

func multipartBody(t *testing.T, product dto.ProductRequest, photoName string, photoContent []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	productJSON, err := json.Marshal(product)
	require.NoError(t, err)
	require.NoError(t, writer.WriteField("product", string(productJSON)))

	if photoName != "" {
		part, err := writer.CreateFormFile("photo", photoName)
		require.NoError(t, err)
		_, err = part.Write(photoContent)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func doRequest(e *echo.Echo, method, target, token string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func createProduct(t *testing.T, e *echo.Echo, product dto.ProductRequest, photoName string, photoContent []byte) dto.ProductResponse {
	t.Helper()

	body, contentType := multipartBody(t, product, photoName, photoContent)
	rec := doRequest(e, http.MethodPost, "/api/v1/products", authToken(t), body, contentType)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var envelope struct {
		Status string              `json:"status"`
		Data   dto.ProductResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Equal(t, "success", envelope.Status)

	return envelope.Data
}

func testProduct() dto.ProductRequest {
	return dto.ProductRequest{
		Name:        "Wooden Train",
		Description: "A small wooden train",
		Price:       19.99,
		Quantity:    5,
		Category:    "Toys",
	}
}

func TestGetProductsEmpty(t *testing.T) {
	e, _ := setupServer(t)

	rec := doRequest(e, http.MethodGet, "/api/v1/products", "", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Status string                `json:"status"`
		Data   []dto.ProductResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "success", envelope.Status)
	assert.Empty(t, envelope.Data)
}

func TestGetProductByIDNotFound(t *testing.T) {
	e, _ := setupServer(t)

	rec := doRequest(e, http.MethodGet, "/api/v1/products/42", "", nil, "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var envelope response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "error", envelope.Status)
}

func TestGetProductByIDInvalidID(t *testing.T) {
	e, _ := setupServer(t)

	rec := doRequest(e, http.MethodGet, "/api/v1/products/abc", "", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddProductRequiresAuthentication(t *testing.T) {
	e, _ := setupServer(t)

	body, contentType := multipartBody(t, testProduct(), "", nil)
	rec := doRequest(e, http.MethodPost, "/api/v1/products", "", body, contentType)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAddProductWithPhoto(t *testing.T) {
	e, _ := setupServer(t)

	created := createProduct(t, e, testProduct(), "train.png", []byte("png-bytes"))
	require.NotNil(t, created.PhotoURL)

	rec := doRequest(e, http.MethodGet, fmt.Sprintf("/api/v1/files/products/%s", *created.PhotoURL), "", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, []byte("png-bytes"), rec.Body.Bytes())
}

func TestAddProductValidation(t *testing.T) {
	e, _ := setupServer(t)

	missingFields := testProduct()
	missingFields.Name = ""
	missingFields.Price = -1

	longDescription := testProduct()
	longDescription.Description = strings.Repeat("a", 1001)

	testCases := []struct {
		name    string
		request dto.ProductRequest
	}{
		{"missing name and negative price", missingFields},
		{"description over 1000 characters", longDescription},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			body, contentType := multipartBody(t, tc.request, "", nil)
			rec := doRequest(e, http.MethodPost, "/api/v1/products", authToken(t), body, contentType)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var envelope response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
			assert.Equal(t, "error", envelope.Status)
			assert.NotNil(t, envelope.Errors)
		})
	}
}

func TestGetProductsByCategory(t *testing.T) {
	e, _ := setupServer(t)

	createProduct(t, e, testProduct(), "", nil)
	other := testProduct()
	other.Category = "Garden"
	createProduct(t, e, other, "", nil)

	rec := doRequest(e, http.MethodGet, "/api/v1/products/category/Toys", "", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data []dto.ProductResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "Toys", envelope.Data[0].Category)
}

func TestUpdateProductWithoutPhotoKeepsReference(t *testing.T) {
	e, _ := setupServer(t)

	created := createProduct(t, e, testProduct(), "train.png", []byte("x"))
	require.NotNil(t, created.PhotoURL)

	update := testProduct()
	update.Name = "Tin Train"
	body, contentType := multipartBody(t, update, "", nil)
	rec := doRequest(e, http.MethodPut, fmt.Sprintf("/api/v1/products/%d", created.ID), authToken(t), body, contentType)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var envelope struct {
		Data dto.ProductResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "Tin Train", envelope.Data.Name)
	require.NotNil(t, envelope.Data.PhotoURL)
	assert.Equal(t, *created.PhotoURL, *envelope.Data.PhotoURL)
	assert.Equal(t, created.CreatedAt, envelope.Data.CreatedAt)
}

func TestUpdateProductNotFound(t *testing.T) {
	e, _ := setupServer(t)

	body, contentType := multipartBody(t, testProduct(), "", nil)
	rec := doRequest(e, http.MethodPut, "/api/v1/products/42", authToken(t), body, contentType)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProduct(t *testing.T) {
	e, storage := setupServer(t)

	created := createProduct(t, e, testProduct(), "train.png", []byte("x"))
	require.NotNil(t, created.PhotoURL)

	rec := doRequest(e, http.MethodDelete, fmt.Sprintf("/api/v1/products/%d", created.ID), authToken(t), nil, "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.Bytes())

	_, err := storage.Load(*created.PhotoURL)
	assert.Error(t, err)

	rec = doRequest(e, http.MethodGet, fmt.Sprintf("/api/v1/products/%d", created.ID), "", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProductRequiresAuthentication(t *testing.T) {
	e, _ := setupServer(t)

	rec := doRequest(e, http.MethodDelete, "/api/v1/products/1", "", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
