package controller

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/benho/store-management/internal/dto"
	"github.com/benho/store-management/internal/service"
	"github.com/benho/store-management/pkg/errs"
	"github.com/benho/store-management/pkg/response"
	"github.com/benho/store-management/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type Controller struct {
	service service.ProductService
}

func CreateProductController(e *echo.Group, service service.ProductService, isLoggedIn echo.MiddlewareFunc) {
	c := Controller{
		service: service,
	}
	e.GET("/products", c.GetProducts)
	e.GET("/products/:id", c.GetProductByID)
	e.GET("/products/category/:category", c.GetProductsByCategory)
	e.POST("/products", c.AddProduct, isLoggedIn)
	e.PUT("/products/:id", c.UpdateProduct, isLoggedIn)
	e.DELETE("/products/:id", c.DeleteProduct, isLoggedIn)
}

func (c *Controller) GetProducts(e echo.Context) error {
	resp, err := c.service.GetProducts(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved products record", resp)
}

func (c *Controller) GetProductByID(e echo.Context) error {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.service.GetProductByID(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *Controller) GetProductsByCategory(e echo.Context) error {
	resp, err := c.service.GetProductsByCategory(e.Request().Context(), e.Param("category"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved products record", resp)
}

func (c *Controller) AddProduct(e echo.Context) error {
	userID, userName := utils.ExtractTokenUser(e)

	payload, validationErrors, err := bindProductForm(e)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}
	if len(validationErrors) > 0 {
		return response.WriteErrorResponse(e, errs.ErrClient, validationErrors)
	}

	photo, err := readPhotoPart(e)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.service.AddProduct(e.Request().Context(), payload, photo)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	log.Info().Int64("user_id", userID).Str("user_name", userName).Int64("product_id", resp.ID).Msg("product created")

	return response.WriteCreatedResponse(e, "", resp)
}

func (c *Controller) UpdateProduct(e echo.Context) error {
	userID, userName := utils.ExtractTokenUser(e)

	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	payload, validationErrors, err := bindProductForm(e)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}
	if len(validationErrors) > 0 {
		return response.WriteErrorResponse(e, errs.ErrClient, validationErrors)
	}

	photo, err := readPhotoPart(e)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.service.UpdateProduct(e.Request().Context(), id, payload, photo)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	log.Info().Int64("user_id", userID).Str("user_name", userName).Int64("product_id", resp.ID).Msg("product updated")

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *Controller) DeleteProduct(e echo.Context) error {
	userID, userName := utils.ExtractTokenUser(e)

	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := c.service.DeleteProduct(e.Request().Context(), id); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	log.Info().Int64("user_id", userID).Str("user_name", userName).Int64("product_id", id).Msg("product deleted")

	return e.NoContent(http.StatusNoContent)
}

// bindProductForm decodes and validates the JSON "product" part of the
// multipart payload.
func bindProductForm(e echo.Context) (dto.ProductRequest, []response.ValidationError, error) {
	payload := dto.ProductRequest{}

	raw := e.FormValue("product")
	if raw == "" {
		return payload, []response.ValidationError{{Field: "product", Tag: "required"}}, nil
	}

	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return payload, nil, err
	}

	return payload, payload.Validate(), nil
}

// readPhotoPart reads the optional "photo" file part. A missing part is not
// an error and yields a nil upload.
func readPhotoPart(e echo.Context) (*dto.PhotoUpload, error) {
	fileHeader, err := e.FormFile("photo")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}

	return &dto.PhotoUpload{Filename: fileHeader.Filename, Content: content}, nil
}
