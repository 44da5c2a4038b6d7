// Package v1 implements the handlers for version 1 of the API.
package v1

import (
	"errors"
	"net/http"

	"github.com/centsible/backend/internal/bank"
	"github.com/centsible/backend/internal/models"
	cs_uuid "github.com/centsible/backend/internal/uuid"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// URIID binds the ID path parameter of a resource URL.
type URIID struct {
	ID cs_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// Pagination contains information about the pagination for collection endpoints.
type Pagination struct {
	Count  int   `json:"count"`  // The amount of records returned in this response
	Offset uint  `json:"offset"` // The offset for the first record returned
	Limit  int   `json:"limit"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total"`  // The total number of resources matching the query
}

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, bank.ErrNotConfigured) {
		return http.StatusServiceUnavailable
	}

	// Unknown currencies, unparseable dates and invalid bodies are all
	// client errors.
	return http.StatusBadRequest
}
