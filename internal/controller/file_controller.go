package controller

import (
	"net/http"
	"strings"

	"github.com/benho/store-management/internal/infrastructure/filestorage"
	"github.com/benho/store-management/pkg/response"
	"github.com/labstack/echo/v4"
)

type FileController struct {
	storage filestorage.FileStorage
}

func CreateFileController(e *echo.Group, storage filestorage.FileStorage) {
	c := FileController{
		storage: storage,
	}
	e.GET("/files/products/:filename", c.GetProductImage)
}

func (c *FileController) GetProductImage(e echo.Context) error {
	filename := e.Param("filename")

	content, err := c.storage.Load(filename)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return e.Blob(http.StatusOK, contentTypeFor(filename), content)
}

// contentTypeFor maps a stored filename to a content type by extension.
// Best-effort heuristic, no content inspection; JPEG is the fallback.
func contentTypeFor(filename string) string {
	name := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(name, ".png"):
		return "image/png"
	case strings.HasSuffix(name, ".gif"):
		return "image/gif"
	case strings.HasSuffix(name, ".webp"):
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
