package order

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderIDAlreadyAssigned is returned when attempting to assign an identifier
	// to an order that already has one. Identifiers are repository-assigned and stable.
	ErrOrderIDAlreadyAssigned = errors.New("order id is already assigned")
)

// Order represents a customizable pizza order. It is the aggregate root that manages
// the order lifecycle from composition through finalization.
//
// Order follows these invariants:
//   - Size always resolves to an existing catalog Size
//   - Toppings are duplicate-free, each resolving to an existing catalog Topping,
//     and are held sorted ascending by id so descriptions are reproducible
//   - Price and description are derived values, recomputed on every composition
//     change and on finalize; they are never independently settable
//   - Once Finalized, the finalization timestamp is non-nil and never cleared
//   - Can only be created through NewOrder or RestoreOrder constructors
//
// The identifier is assigned by the repository on first persistence and is zero
// until then. The Order struct uses private fields to ensure encapsulation and
// maintains its invariants through validated methods.
type Order struct {
	// id is the repository-assigned identifier (0 until first persisted)
	id int64

	// status represents the current state in the order lifecycle
	status Status

	// size is the selected pizza size (always valid)
	size catalog.Size

	// toppings is the selected topping set, sorted ascending by id
	toppings []catalog.Topping

	// price is the derived order price, kept consistent with size/toppings
	price kernel.Price

	// description is the derived human-readable description
	description string

	// finalizedAt is nil while Draft; set on finalize, re-stamped on repeat finalize
	finalizedAt *time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Draft order with the given composition.
// This is the only way to create a fresh order, ensuring all business
// invariants are maintained. The price and description are computed from the
// composition immediately.
//
// Parameters:
//   - size: The selected catalog size (must be constructed via catalog.NewSize)
//   - toppings: The selected toppings (duplicate-free; any order, sorted internally)
//
// Returns:
//   - *Order: The created Draft order if all validations pass
//   - error: Validation error if the composition is invalid
//
// Example:
//
//	price, _ := kernel.NewPriceFromFloat(12)
//	large, _ := catalog.NewSize(3, "Large", price)
//	draft, err := order.NewOrder(large, nil)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(size catalog.Size, toppings []catalog.Topping) (*Order, error) {
	o := &Order{
		status:        Draft,
		isConstructed: true,
	}

	if err := o.setComposition(size, toppings); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence.
//
// Unlike NewOrder it accepts the stored derived fields (price, description)
// verbatim instead of recomputing them: the derived values are a cache whose
// invalidation points are composition changes and finalization, so a plain
// read must round-trip them byte-identically.
//
// All structural invariants are still enforced: the id must be positive, the
// status valid and consistent with the finalization timestamp, and the
// composition well-formed.
func RestoreOrder(
	id int64,
	size catalog.Size,
	toppings []catalog.Topping,
	price kernel.Price,
	description string,
	status Status,
	finalizedAt *time.Time,
) (*Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not greater than 0", id))
	}

	if err := errors.Join(
		status.Validate(),
		status.ValidateCanHaveFinalizedAt(finalizedAt != nil),
		price.Validate(),
		validateComposition(size, toppings),
	); err != nil {
		return nil, err
	}

	o := &Order{
		id:            id,
		status:        status,
		size:          size,
		toppings:      sortedByID(toppings),
		price:         price,
		description:   description,
		finalizedAt:   finalizedAt,
		isConstructed: true,
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a constructor.
// This prevents bypassing validation by directly instantiating the struct.
//
// This method should be called when reconstructing orders from persistence
// to ensure data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
// Orders are considered equal if they have the same non-zero ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// ID returns the order's repository-assigned identifier (0 if not yet persisted).
func (o *Order) ID() int64 {
	return o.id
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Size returns the selected pizza size.
func (o *Order) Size() catalog.Size {
	return o.size
}

// Toppings returns the selected toppings, sorted ascending by id.
// The returned slice is a copy; mutating it does not affect the order.
func (o *Order) Toppings() []catalog.Topping {
	toppings := make([]catalog.Topping, len(o.toppings))
	copy(toppings, o.toppings)
	return toppings
}

// Price returns the derived order price.
func (o *Order) Price() kernel.Price {
	return o.price
}

// Description returns the derived human-readable description.
func (o *Order) Description() string {
	return o.description
}

// FinalizedAt returns the finalization timestamp.
// Returns nil while the order is in Draft status.
func (o *Order) FinalizedAt() *time.Time {
	return o.finalizedAt
}

// AssignID sets the repository-assigned identifier after first persistence.
//
// Returns ErrOrderIDAlreadyAssigned if the order already has an identifier;
// identifiers are stable once assigned.
func (o *Order) AssignID(id int64) error {
	if o.id != 0 {
		return ErrOrderIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not greater than 0", id))
	}

	o.id = id
	return nil
}

// SetComposition replaces the order's size and toppings and recomputes the
// derived price and description.
//
// The toppings may arrive in any order; they are sorted ascending by id before
// the quote is computed so descriptions are reproducible. Duplicate toppings
// are rejected.
//
// Composition changes are permitted in any status, including Finalized; the
// caller decides whether to expose that capability.
func (o *Order) SetComposition(size catalog.Size, toppings []catalog.Topping) error {
	if err := o.Validate(); err != nil {
		return err
	}

	return o.setComposition(size, toppings)
}

// Finalize marks the order as submitted.
//
// The price and description are recomputed from the current composition
// first, guarding against any staleness, then the finalization timestamp is
// stamped and the status becomes Finalized.
//
// Calling Finalize on an already-Finalized order is accepted: the price is
// recomputed and the timestamp is re-stamped to the new time. There is no
// transition back to Draft.
func (o *Order) Finalize(now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Finalize()
	if err != nil {
		return err
	}

	o.price, o.description = CalculateQuote(o.size, o.toppings)
	o.status = newStatus
	o.finalizedAt = &now
	return nil
}

// setComposition validates and applies a composition, then refreshes the
// derived fields. Shared by NewOrder and SetComposition.
func (o *Order) setComposition(size catalog.Size, toppings []catalog.Topping) error {
	if err := validateComposition(size, toppings); err != nil {
		return err
	}

	o.size = size
	o.toppings = sortedByID(toppings)
	o.price, o.description = CalculateQuote(o.size, o.toppings)
	return nil
}

// validateComposition checks that the size and every topping were constructed
// through their catalog constructors and that no topping appears twice.
func validateComposition(size catalog.Size, toppings []catalog.Topping) error {
	errList := []error{size.Validate()}

	seen := make(map[int]struct{}, len(toppings))
	for _, topping := range toppings {
		if err := topping.Validate(); err != nil {
			errList = append(errList, err)
			continue
		}
		if _, ok := seen[topping.ID()]; ok {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("toppings",
				fmt.Errorf("topping %d is selected more than once", topping.ID())))
			continue
		}
		seen[topping.ID()] = struct{}{}
	}

	return errors.Join(errList...)
}

// sortedByID returns a copy of the toppings sorted ascending by id.
func sortedByID(toppings []catalog.Topping) []catalog.Topping {
	sorted := make([]catalog.Topping, len(toppings))
	copy(sorted, toppings)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID() < sorted[j].ID()
	})
	return sorted
}
