// Package httperror maps errors to HTTP responses.
package httperror

import (
	"errors"
	"net/http"

	"github.com/fundflow/backend/internal/models"
)

type Error struct {
	Message string `json:"error" example:"the user query parameter must be set"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}

// Status returns the HTTP status for an error.
//
// Errors of the database are server errors, missing resources are
// reported as such. Everything else was caused by the request.
func Status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}
