package catalog

import (
	"errors"
	"fmt"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

// ErrToppingIsNotConstructed is returned when a Topping instance was not created through
// the NewTopping factory method. This ensures all toppings are properly validated.
var ErrToppingIsNotConstructed = errs.NewValueIsRequiredError(
	"topping must be created via NewTopping constructor")

// Topping represents a pizza topping option from the catalog.
// Topping is an immutable value object seeded by an external administration step;
// the core only reads it.
//
// Topping follows these invariants:
//   - ID is a positive, catalog-assigned, stable integer
//   - Name is non-empty
//   - Unit price is a valid non-negative Price
type Topping struct { //nolint:recvcheck //using for validation
	id        int
	name      string
	unitPrice kernel.Price

	guard guard.ConstructorGuard
}

// NewTopping creates a new Topping with validation.
// Returns an error if the id is not positive, the name is empty,
// or the unit price was not properly constructed.
func NewTopping(id int, name string, unitPrice kernel.Price) (Topping, error) {
	topping := Topping{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		topping.setID(id),
		topping.setName(name),
		topping.setUnitPrice(unitPrice),
	); err != nil {
		return Topping{}, err
	}

	return topping, nil
}

// Validate checks if the Topping was properly constructed using NewTopping.
// The zero value of Topping is invalid and will fail this validation.
func (t Topping) Validate() error {
	return t.guard.Validate(ErrToppingIsNotConstructed)
}

// IsEqual compares two toppings by their catalog identifiers.
func (t Topping) IsEqual(other Topping) bool {
	return t.id == other.id
}

// ID returns the catalog-assigned identifier of the topping.
func (t Topping) ID() int {
	return t.id
}

// Name returns the display name of the topping.
func (t Topping) Name() string {
	return t.name
}

// UnitPrice returns the current unit price of the topping.
func (t Topping) UnitPrice() kernel.Price {
	return t.unitPrice
}

func (t *Topping) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("topping id",
			fmt.Errorf("%d is not greater than 0", id))
	}
	t.id = id
	return nil
}

func (t *Topping) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("topping name")
	}
	t.name = name
	return nil
}

func (t *Topping) setUnitPrice(unitPrice kernel.Price) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	t.unitPrice = unitPrice
	return nil
}
