package pricing

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrSpecialItemRuleIsNotConstructed is returned when a SpecialItemRule was
	// not created through NewSpecialItemRule or RestoreSpecialItemRule.
	ErrSpecialItemRuleIsNotConstructed = errors.New("SpecialItemRule must be created via NewSpecialItemRule or RestoreSpecialItemRule")

	// ErrModelRangeIsInverted is returned when the minimum model bound orders
	// after the maximum bound.
	ErrModelRangeIsInverted = errors.New("model range minimum is greater than maximum")
)

// SpecialItemRule is a fixed-fee pricing override for a specific kind of
// item, keyed by category, brand, and item name, with an inclusive model
// range. A package whose declared item matches an active rule is charged the
// rule's fixed fee instead of weight-based pricing.
//
// Category, brand, and item name match case-insensitively. The model range is
// compared numerically when both values parse as numbers (so "9" < "10"),
// otherwise lexicographically.
type SpecialItemRule struct {
	id        kernel.UUID
	category  string
	brand     string
	itemName  string
	minModel  string
	maxModel  string
	fixedFee  kernel.Money
	active    bool
	createdAt time.Time

	isConstructed bool
}

// NewSpecialItemRule creates an active SpecialItemRule.
// All key fields must be non-empty and the model range must not be inverted.
func NewSpecialItemRule(
	id kernel.UUID,
	category string,
	brand string,
	itemName string,
	minModel string,
	maxModel string,
	fixedFee kernel.Money,
	createdAt time.Time,
) (*SpecialItemRule, error) {
	rule := &SpecialItemRule{
		active:        true,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		rule.setID(id),
		rule.setKey(category, brand, itemName),
		rule.setModelRange(minModel, maxModel),
		rule.setFixedFee(fixedFee),
	); err != nil {
		return nil, err
	}

	return rule, nil
}

// RestoreSpecialItemRule reconstructs a SpecialItemRule from persistence.
func RestoreSpecialItemRule(
	id kernel.UUID,
	category string,
	brand string,
	itemName string,
	minModel string,
	maxModel string,
	fixedFee kernel.Money,
	active bool,
	createdAt time.Time,
) (*SpecialItemRule, error) {
	rule, err := NewSpecialItemRule(id, category, brand, itemName, minModel, maxModel, fixedFee, createdAt)
	if err != nil {
		return nil, err
	}

	rule.active = active
	return rule, nil
}

// Validate ensures the SpecialItemRule was created through a constructor.
func (r *SpecialItemRule) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrSpecialItemRuleIsNotConstructed
	}
	return nil
}

// ID returns the rule's unique identifier.
func (r *SpecialItemRule) ID() kernel.UUID {
	return r.id
}

// Category returns the item category the rule applies to.
func (r *SpecialItemRule) Category() string {
	return r.category
}

// Brand returns the brand the rule applies to.
func (r *SpecialItemRule) Brand() string {
	return r.brand
}

// ItemName returns the item name the rule applies to.
func (r *SpecialItemRule) ItemName() string {
	return r.itemName
}

// MinModel returns the inclusive lower bound of the model range.
func (r *SpecialItemRule) MinModel() string {
	return r.minModel
}

// MaxModel returns the inclusive upper bound of the model range.
func (r *SpecialItemRule) MaxModel() string {
	return r.maxModel
}

// FixedFee returns the fee charged in place of weight-based pricing.
func (r *SpecialItemRule) FixedFee() kernel.Money {
	return r.fixedFee
}

// IsActive reports whether the rule participates in matching.
func (r *SpecialItemRule) IsActive() bool {
	return r.active
}

// CreatedAt returns the rule's creation time, used as the matcher tie-break.
func (r *SpecialItemRule) CreatedAt() time.Time {
	return r.createdAt
}

// Deactivate removes the rule from matching without deleting its history.
func (r *SpecialItemRule) Deactivate() {
	r.active = false
}

// Matches reports whether the described item falls under this rule.
// Category, brand, and item name compare case-insensitively; the model must
// fall inside the inclusive [minModel, maxModel] range.
func (r *SpecialItemRule) Matches(category, brand, itemName, model string) bool {
	if !strings.EqualFold(r.category, strings.TrimSpace(category)) ||
		!strings.EqualFold(r.brand, strings.TrimSpace(brand)) ||
		!strings.EqualFold(r.itemName, strings.TrimSpace(itemName)) {
		return false
	}

	model = strings.TrimSpace(model)
	return compareModels(model, r.minModel) >= 0 && compareModels(model, r.maxModel) <= 0
}

// OverlapsWith reports whether two rules cover the same item triple with
// intersecting model ranges. Used at write time to reject conflicting
// configuration.
func (r *SpecialItemRule) OverlapsWith(other *SpecialItemRule) bool {
	if other == nil {
		return false
	}
	if !strings.EqualFold(r.category, other.category) ||
		!strings.EqualFold(r.brand, other.brand) ||
		!strings.EqualFold(r.itemName, other.itemName) {
		return false
	}

	return compareModels(r.minModel, other.maxModel) <= 0 &&
		compareModels(other.minModel, r.maxModel) <= 0
}

// compareModels orders two model designations. When both parse as numbers the
// comparison is numeric, so "9" orders before "10"; otherwise the comparison
// is case-insensitive lexicographic.
func compareModels(a, b string) int {
	numA, errA := decimal.NewFromString(a)
	numB, errB := decimal.NewFromString(b)
	if errA == nil && errB == nil {
		return numA.Cmp(numB)
	}

	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func (r *SpecialItemRule) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *SpecialItemRule) setKey(category, brand, itemName string) error {
	category = strings.TrimSpace(category)
	brand = strings.TrimSpace(brand)
	itemName = strings.TrimSpace(itemName)

	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	if brand == "" {
		return errs.NewValueIsRequiredError("brand")
	}
	if itemName == "" {
		return errs.NewValueIsRequiredError("itemName")
	}

	r.category = category
	r.brand = brand
	r.itemName = itemName
	return nil
}

func (r *SpecialItemRule) setModelRange(minModel, maxModel string) error {
	minModel = strings.TrimSpace(minModel)
	maxModel = strings.TrimSpace(maxModel)

	if minModel == "" {
		return errs.NewValueIsRequiredError("minModel")
	}
	if maxModel == "" {
		return errs.NewValueIsRequiredError("maxModel")
	}
	if compareModels(minModel, maxModel) > 0 {
		return errs.NewValueIsInvalidErrorWithCause("modelRange",
			fmt.Errorf("%w: [%s, %s]", ErrModelRangeIsInverted, minModel, maxModel))
	}

	r.minModel = minModel
	r.maxModel = maxModel
	return nil
}

func (r *SpecialItemRule) setFixedFee(fixedFee kernel.Money) error {
	if err := fixedFee.Validate(); err != nil {
		return err
	}
	r.fixedFee = fixedFee
	return nil
}
