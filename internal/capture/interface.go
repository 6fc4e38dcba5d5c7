package capture

import (
	"context"

	"smart-screenshot-organizer/internal/model"
)

// UseCase defines the business logic interface for the capture domain.
type UseCase interface {
	// Process runs the extraction strategy over a recognized screenshot,
	// stores the capture, and triggers best-effort calendar export and
	// notification.
	Process(ctx context.Context, sc model.Scope, input ProcessInput) (ProcessOutput, error)

	// Categorize runs the rule-based pipeline only; nothing is stored.
	Categorize(ctx context.Context, input CategorizeInput) (CategorizeOutput, error)

	// Detail returns a stored capture by ID.
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)

	// List returns a page of stored captures, newest first.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// Delete removes a stored capture by ID.
	Delete(ctx context.Context, sc model.Scope, id string) error
}
