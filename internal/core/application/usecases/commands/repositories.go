// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"forwarding/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// RequestRepoFactory provides access to the request repository within a transaction.
	RequestRepoFactory interface {
		RequestRepository() ports.RequestRepository
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// HistoryRepoFactory provides access to the tracking history repository within a transaction.
	HistoryRepoFactory interface {
		HistoryRepository() ports.HistoryRepository
	}

	// PricingRepoFactory provides access to the pricing repositories within a transaction.
	PricingRepoFactory interface {
		FeeScheduleRepository() ports.FeeScheduleRepository
		SpecialItemRuleRepository() ports.SpecialItemRuleRepository
	}

	// TrackingSequenceFactory provides access to the tracking number sequence
	// within a transaction.
	TrackingSequenceFactory interface {
		TrackingSequence() ports.TrackingSequence
	}

	// RequestUoW manages transactions for request-only operations.
	// Used by submission and review-gate commands.
	RequestUoW interface {
		TxManager
		RequestRepoFactory
	}

	// RequestUoWFactory creates new request unit of work instances.
	RequestUoWFactory interface {
		Create() RequestUoW
	}

	// ParcelUoW manages transactions for parcel lifecycle operations.
	// Every status transition persists the parcel together with its new
	// history entries.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
		HistoryRepoFactory
	}

	// ParcelUoWFactory creates new parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// PricingUoW manages transactions for fee schedule and special item
	// rule administration.
	PricingUoW interface {
		TxManager
		PricingRepoFactory
	}

	// PricingUoWFactory creates new pricing unit of work instances.
	PricingUoWFactory interface {
		Create() PricingUoW
	}

	// ApprovalUoW manages the request approval transaction, which spans
	// every aggregate: the request being resolved, the pricing inputs, the
	// tracking sequence, and the parcel with its first history entry.
	ApprovalUoW interface {
		TxManager
		RequestRepoFactory
		ParcelRepoFactory
		HistoryRepoFactory
		PricingRepoFactory
		TrackingSequenceFactory
	}

	// ApprovalUoWFactory creates new approval unit of work instances.
	ApprovalUoWFactory interface {
		Create() ApprovalUoW
	}

	// CorrectionUoW manages administrative weight corrections, which load
	// pricing inputs and rewrite the parcel's fee in one transaction.
	CorrectionUoW interface {
		TxManager
		ParcelRepoFactory
		HistoryRepoFactory
		PricingRepoFactory
	}

	// CorrectionUoWFactory creates new correction unit of work instances.
	CorrectionUoWFactory interface {
		Create() CorrectionUoW
	}
)
