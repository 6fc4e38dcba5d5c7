package repository

import (
	"context"
	"errors"

	"smart-screenshot-organizer/internal/model"
)

// ErrNotFound is returned when a capture ID does not exist.
var ErrNotFound = errors.New("capture not found in repository")

// ListOptions controls paging for List.
type ListOptions struct {
	UserID string // filter by owner; empty means all
	Limit  int
	Offset int
}

// Repository is the storage collaborator for processed captures. The core
// hands finished captures over as-is; persistence details live behind this
// interface.
type Repository interface {
	Create(ctx context.Context, capture model.Capture) error
	Get(ctx context.Context, id string) (model.Capture, error)
	List(ctx context.Context, opts ListOptions) ([]model.Capture, int, error)
	Delete(ctx context.Context, id string) error
}
