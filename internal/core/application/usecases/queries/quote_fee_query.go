package queries

import (
	"errors"
	"strings"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrQuoteFeeQueryIsNotConstructed = errors.New(
		"QuoteFeeQuery must be created via NewQuoteFeeQuery constructor",
	)
	ErrQuoteWeightIsNegative = errors.New("quote weight must not be negative")
)

// QuoteFeeQuery computes a fee preview without creating anything. Customers
// use it from the shipping calculator before submitting a request; it runs
// the same pricing rules the approval flow applies, so the preview matches
// the fee an approved parcel would carry.
//
// Weight is optional: a quote for a special item needs no weight, while a
// weight-priced quote without one fails at pricing time.
type QuoteFeeQuery struct {
	weight   *decimal.Decimal
	category string
	brand    string
	itemName string
	model    string

	guard guard.ConstructorGuard
}

// NewQuoteFeeQuery creates a fee-preview query. All item descriptors are
// optional; empty descriptors simply match no special-item rule.
func NewQuoteFeeQuery(
	weight *decimal.Decimal,
	category string,
	brand string,
	itemName string,
	model string,
) (QuoteFeeQuery, error) {
	if weight != nil && weight.IsNegative() {
		return QuoteFeeQuery{}, ErrQuoteWeightIsNegative
	}

	return QuoteFeeQuery{
		weight:   weight,
		category: strings.TrimSpace(category),
		brand:    strings.TrimSpace(brand),
		itemName: strings.TrimSpace(itemName),
		model:    strings.TrimSpace(model),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Weight returns the weight to quote, or nil when none was given.
func (q QuoteFeeQuery) Weight() *decimal.Decimal {
	return q.weight
}

// Category returns the item category descriptor.
func (q QuoteFeeQuery) Category() string {
	return q.category
}

// Brand returns the item brand descriptor.
func (q QuoteFeeQuery) Brand() string {
	return q.brand
}

// ItemName returns the item name descriptor.
func (q QuoteFeeQuery) ItemName() string {
	return q.itemName
}

// Model returns the item model descriptor.
func (q QuoteFeeQuery) Model() string {
	return q.model
}

// Validate ensures the query was created through the constructor.
func (q QuoteFeeQuery) Validate() error {
	return q.guard.Validate(ErrQuoteFeeQueryIsNotConstructed)
}

// QuoteFeeQueryResponse is a fee preview. Total is what the customer would
// be charged; SpecialItem reports whether a fixed-fee rule won the match.
type QuoteFeeQueryResponse struct {
	ServiceFee    decimal.Decimal
	VariableFee   decimal.Decimal
	Total         decimal.Decimal
	SpecialItem   bool
	AppliedRuleID *kernel.UUID
}
