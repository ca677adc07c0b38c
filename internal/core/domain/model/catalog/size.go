package catalog

import (
	"errors"
	"fmt"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

// ErrSizeIsNotConstructed is returned when a Size instance was not created through
// the NewSize factory method. This ensures all sizes are properly validated.
var ErrSizeIsNotConstructed = errs.NewValueIsRequiredError(
	"size must be created via NewSize constructor")

// Size represents a pizza size option from the catalog.
// Size is an immutable value object seeded by an external administration step;
// the core only reads it.
//
// Size follows these invariants:
//   - ID is a positive, catalog-assigned, stable integer
//   - Name is non-empty
//   - Unit price is a valid non-negative Price
//
// Example:
//
//	price, _ := kernel.NewPriceFromFloat(12)
//	size, err := catalog.NewSize(3, "Large", price)
//	if err != nil {
//	    // Handle validation error
//	}
type Size struct { //nolint:recvcheck //using for validation
	id        int
	name      string
	unitPrice kernel.Price

	guard guard.ConstructorGuard
}

// NewSize creates a new Size with validation.
// Returns an error if the id is not positive, the name is empty,
// or the unit price was not properly constructed.
func NewSize(id int, name string, unitPrice kernel.Price) (Size, error) {
	size := Size{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		size.setID(id),
		size.setName(name),
		size.setUnitPrice(unitPrice),
	); err != nil {
		return Size{}, err
	}

	return size, nil
}

// Validate checks if the Size was properly constructed using NewSize.
// The zero value of Size is invalid and will fail this validation.
func (s Size) Validate() error {
	return s.guard.Validate(ErrSizeIsNotConstructed)
}

// IsEqual compares two sizes by their catalog identifiers.
func (s Size) IsEqual(other Size) bool {
	return s.id == other.id
}

// ID returns the catalog-assigned identifier of the size.
func (s Size) ID() int {
	return s.id
}

// Name returns the display name of the size.
func (s Size) Name() string {
	return s.name
}

// UnitPrice returns the current unit price of the size.
func (s Size) UnitPrice() kernel.Price {
	return s.unitPrice
}

func (s *Size) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("size id",
			fmt.Errorf("%d is not greater than 0", id))
	}
	s.id = id
	return nil
}

func (s *Size) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("size name")
	}
	s.name = name
	return nil
}

func (s *Size) setUnitPrice(unitPrice kernel.Price) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	s.unitPrice = unitPrice
	return nil
}
