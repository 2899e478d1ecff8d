// Package notify contains the customer notification adapter. The real
// email/SMS dispatcher is an external collaborator; this adapter records the
// events that would be handed to it.
package notify

import (
	"context"
	"log/slog"

	"forwarding/internal/core/domain/model/parcel"
)

// SlogNotifier implements ports.Notifier by logging structured status-change
// events.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a notifier that writes to the given logger.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{
		logger: logger.With("component", "notifier"),
	}
}

// NotifyStatusChanged records a customer-facing status change event.
func (n *SlogNotifier) NotifyStatusChanged(_ context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	n.logger.Info("parcel status changed",
		"tracking_number", aggregate.TrackingNumber().String(),
		"customer_id", aggregate.CustomerID().String(),
		"status", aggregate.Status().String(),
		"location", aggregate.Location().String(),
	)
	return nil
}
