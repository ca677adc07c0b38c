package kernel

import (
	"fmt"

	"github.com/shopspring/decimal"

	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

// PriceScale is the number of decimal places every rendered price carries.
// Prices are rounded half away from zero to this scale; the tie-breaking
// policy is fixed here so boundary amounts round the same way everywhere.
const PriceScale = 2

// ErrPriceIsNotConstructed is returned when attempting to use an improperly initialized Price.
// Prices must be created using NewPrice or NewPriceFromFloat constructors to ensure validity.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError(
	"price must be created via NewPrice or NewPriceFromFloat constructors")

// Price represents a non-negative monetary amount.
// Price is an immutable value object backed by arbitrary-precision decimals,
// so sums and discounts never accumulate binary floating point error.
// The zero value of Price is invalid and will fail validation - use constructors to create instances.
//
// Example:
//
//	price, err := kernel.NewPriceFromFloat(12)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Price: %s", price) // Output: 12.00
type Price struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewPrice creates a new Price from a decimal amount.
// The amount must not be negative.
//
// Returns:
//   - Price: A valid price instance
//   - error: Validation error if the amount is negative
func NewPrice(amount decimal.Decimal) (Price, error) {
	if amount.IsNegative() {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", amount))
	}

	return Price{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewPriceFromFloat creates a new Price from a float amount.
// Convenience constructor for catalog seed data and tests.
func NewPriceFromFloat(amount float64) (Price, error) {
	return NewPrice(decimal.NewFromFloat(amount))
}

// Validate checks if the Price was properly constructed using a constructor.
// The zero value of Price is invalid and will fail this validation.
//
// Returns:
//   - error: ErrPriceIsNotConstructed if the price was not properly initialized, nil otherwise
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

// Add returns the sum of this price and another.
// Both operands are left unchanged.
func (p Price) Add(other Price) Price {
	return Price{
		amount: p.amount.Add(other.amount),
		guard:  guard.NewConstructorGuard(),
	}
}

// Scale returns this price multiplied by the given factor.
// Used for percentage adjustments such as the bulk discount.
func (p Price) Scale(factor decimal.Decimal) Price {
	return Price{
		amount: p.amount.Mul(factor),
		guard:  guard.NewConstructorGuard(),
	}
}

// Round returns this price rounded to PriceScale decimal places,
// half away from zero.
func (p Price) Round() Price {
	return Price{
		amount: p.amount.Round(PriceScale),
		guard:  guard.NewConstructorGuard(),
	}
}

// Decimal returns the underlying decimal amount.
func (p Price) Decimal() decimal.Decimal {
	return p.amount
}

// Float64 returns the amount as a float64 for outbound representations.
func (p Price) Float64() float64 {
	return p.amount.InexactFloat64()
}

// IsEqual compares two prices by numeric value, ignoring trailing zeros.
func (p Price) IsEqual(other Price) bool {
	return p.amount.Equal(other.amount)
}

// String renders the price with a fixed PriceScale decimal places.
// Implements the fmt.Stringer interface.
func (p Price) String() string {
	return p.amount.StringFixed(PriceScale)
}
