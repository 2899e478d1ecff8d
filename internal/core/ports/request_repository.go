// Package ports defines repository interfaces for the forwarding domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/request"
)

// RequestRepository defines the persistence contract for forwarding request
// aggregates. Provides methods for storing, retrieving, and querying requests
// together with their review state.
type RequestRepository interface {
	// Add persists a new request aggregate to storage.
	// The request must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *request.Request) error

	// Update persists changes to an existing request aggregate.
	// The request must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *request.Request) error

	// Get retrieves a request aggregate by its unique identifier.
	// Returns the complete request with its review state.
	Get(ctx context.Context, id kernel.UUID) (*request.Request, error)

	// GetAllPending retrieves all requests that have not been approved or
	// rejected yet, ordered by creation time. Used by the staff review queue.
	GetAllPending(ctx context.Context) ([]*request.Request, error)
}
