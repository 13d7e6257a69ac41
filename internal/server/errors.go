package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-studio/internal/gateway"
	"github.com/jonathan/resume-studio/internal/store"
	"github.com/jonathan/resume-studio/internal/upload"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
// Preconditions the user can fix map to 422, malformed requests to 400 and
// upstream AI failures to 502.
func HTTPStatus(err error) int {
	var (
		rejected    *gateway.ValidationRejectedError
		service     *gateway.ServiceError
		parse       *gateway.ResponseParseError
		fileRead    *upload.FileReadError
		unsupported *upload.UnsupportedTypeError
		badField    *store.UnknownFieldError
		badCol      *store.UnknownCollectionError
	)
	switch {
	case errors.As(err, &rejected):
		return http.StatusUnprocessableEntity
	case errors.As(err, &service), errors.As(err, &parse):
		return http.StatusBadGateway
	case errors.As(err, &fileRead), errors.As(err, &unsupported),
		errors.As(err, &badField), errors.As(err, &badCol):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
