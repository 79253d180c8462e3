// Package handlers implements HTTP handlers for the trade-appraiser API.
package handlers

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/trade-appraiser/internal/store"
	domain "github.com/donaldgifford/trade-appraiser/pkg/types"
)

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// apiError translates domain and store errors into huma status errors.
func apiError(msg string, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return huma.Error422UnprocessableEntity(msg + ": " + err.Error())
	case errors.Is(err, store.ErrNotFound):
		return huma.Error404NotFound(msg + ": " + err.Error())
	default:
		return huma.Error500InternalServerError(msg + ": " + err.Error())
	}
}
