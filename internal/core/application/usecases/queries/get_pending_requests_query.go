package queries

import (
	"errors"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetPendingRequestsQueryIsNotConstructed = errors.New(
	"GetPendingRequestsQuery must be created via NewGetPendingRequestsQuery constructor",
)

// GetPendingRequestsQuery retrieves all shipping requests awaiting staff
// review. This is the staff work queue: oldest submissions first, with the
// current gate state so reviewers can see what still needs confirmation.
//
// Example:
//
//	query := queries.NewGetPendingRequestsQuery()
//	pending, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load work queue: %w", err)
//	}
//
//	fmt.Printf("%d requests awaiting review\n", len(pending))
type GetPendingRequestsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingRequestsQuery creates a query for the pending-request work
// queue. This is a parameterless query.
func NewGetPendingRequestsQuery() GetPendingRequestsQuery {
	return GetPendingRequestsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingRequestsQueryIsNotConstructed)
}

// GetPendingRequestsQueryResponse is one entry of the staff work queue.
// EstimatedWeight is the customer's declared weight and may be absent;
// ReviewWeight and the confirmation flags reflect staff review progress.
type GetPendingRequestsQueryResponse struct {
	ID                kernel.UUID
	CustomerID        kernel.UUID
	CarrierReference  string
	Description       string
	EstimatedWeight   *decimal.Decimal
	DeclaredCategory  string
	ReviewWeight      decimal.Decimal
	WeightConfirmed   bool
	ReviewCategory    string
	CategoryConfirmed bool
	CreatedAt         time.Time
}
