// Package handler exposes the coordinator over JSON HTTP.
package handler

import (
	"github.com/pr-poehali-dev/cs2-case-openings/internal/catalog"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/coordinator"
)

// Handlers serves the /api/v1 routes. Catalog lookups resolve ids from the
// request before the coordinator is called.
type Handlers struct {
	service coordinator.Service
	catalog catalog.Provider
}

// NewHandlers creates the API handlers
func NewHandlers(service coordinator.Service, provider catalog.Provider) *Handlers {
	return &Handlers{
		service: service,
		catalog: provider,
	}
}
