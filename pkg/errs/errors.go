package errs

import (
	"errors"
	"net/http"
)

var (
	ErrInternalServer  = errors.New("Internal server error")
	ErrClient          = errors.New("Bad request")
	ErrNotLoggedIn     = errors.New("Unauthorized access")
	ErrProductNotFound = errors.New("Product not found")
	ErrFileNotFound    = errors.New("File not found")
	ErrFileStorage     = errors.New("File storage operation failed")
)

var errorMap = map[error]int{
	ErrInternalServer:  http.StatusInternalServerError,
	ErrClient:          http.StatusBadRequest,
	ErrNotLoggedIn:     http.StatusUnauthorized,
	ErrProductNotFound: http.StatusNotFound,
	ErrFileNotFound:    http.StatusNotFound,
	ErrFileStorage:     http.StatusInternalServerError,
}

func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
