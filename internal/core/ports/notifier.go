package ports

import (
	"context"

	"forwarding/internal/core/domain/model/parcel"
)

// Notifier delivers customer-facing notifications about parcel status
// changes. Delivery failures must not fail the transition that produced the
// event; implementations log and move on.
type Notifier interface {
	// NotifyStatusChanged informs the parcel's customer about a status change.
	NotifyStatusChanged(ctx context.Context, aggregate *parcel.Parcel) error
}
