// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"loyalty/internal/domain/entity"
)

// Actor is the authenticated principal performing an operation.
type Actor struct {
	ID     int64
	Utorid string
	Role   entity.Role
}

// PageInput selects one page of a listing. Zero values fall back to defaults.
type PageInput struct {
	Page  int
	Limit int
}

// ListResult is one page of a listing and the total number of matches.
type ListResult[T any] struct {
	Count   int64 `json:"count"`
	Results []T   `json:"results"`
}
