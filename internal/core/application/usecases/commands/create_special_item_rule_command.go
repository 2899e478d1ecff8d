package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateSpecialItemRuleCommandIsNotConstructed = errors.New(
		"CreateSpecialItemRuleCommand must be created via NewCreateSpecialItemRuleCommand constructor",
	)
	ErrFixedFeeIsNegative = errors.New("fixed fee cannot be negative")
)

// CreateSpecialItemRuleCommand registers a fixed-fee pricing override for a
// (category, brand, item name) key over an inclusive model range.
type CreateSpecialItemRuleCommand struct { //nolint:recvcheck //using for validation
	ruleID   kernel.UUID
	category string
	brand    string
	itemName string
	minModel string
	maxModel string
	fixedFee decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateSpecialItemRuleCommand creates a command to register a special
// item rule. Key fields and range validation happen in the domain
// constructor; the command only rejects a negative fee early.
func NewCreateSpecialItemRuleCommand(
	ruleID kernel.UUID,
	category string,
	brand string,
	itemName string,
	minModel string,
	maxModel string,
	fixedFee decimal.Decimal,
) (CreateSpecialItemRuleCommand, error) {
	cmd := CreateSpecialItemRuleCommand{
		category: category,
		brand:    brand,
		itemName: itemName,
		minModel: minModel,
		maxModel: maxModel,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRuleID(ruleID),
		cmd.setFixedFee(fixedFee),
	); err != nil {
		return CreateSpecialItemRuleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateSpecialItemRuleCommand) Validate() error {
	return c.guard.Validate(ErrCreateSpecialItemRuleCommandIsNotConstructed)
}

// RuleID returns the unique identifier for the new rule.
func (c CreateSpecialItemRuleCommand) RuleID() kernel.UUID {
	return c.ruleID
}

// Category returns the rule's category key.
func (c CreateSpecialItemRuleCommand) Category() string {
	return c.category
}

// Brand returns the rule's brand key.
func (c CreateSpecialItemRuleCommand) Brand() string {
	return c.brand
}

// ItemName returns the rule's item name key.
func (c CreateSpecialItemRuleCommand) ItemName() string {
	return c.itemName
}

// MinModel returns the inclusive lower model bound.
func (c CreateSpecialItemRuleCommand) MinModel() string {
	return c.minModel
}

// MaxModel returns the inclusive upper model bound.
func (c CreateSpecialItemRuleCommand) MaxModel() string {
	return c.maxModel
}

// FixedFee returns the override fee.
func (c CreateSpecialItemRuleCommand) FixedFee() decimal.Decimal {
	return c.fixedFee
}

func (c *CreateSpecialItemRuleCommand) setRuleID(ruleID kernel.UUID) error {
	if err := ruleID.Validate(); err != nil {
		return err
	}

	c.ruleID = ruleID
	return nil
}

func (c *CreateSpecialItemRuleCommand) setFixedFee(fixedFee decimal.Decimal) error {
	if fixedFee.IsNegative() {
		return ErrFixedFeeIsNegative
	}

	c.fixedFee = fixedFee
	return nil
}
