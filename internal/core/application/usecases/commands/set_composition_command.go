package commands

import (
	"errors"
	"fmt"

	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrSetCompositionCommandIsNotConstructed = errors.New(
		"SetCompositionCommand must be created via NewSetCompositionCommand constructor",
	)
)

// SetCompositionCommand represents a request to replace an order's size and
// topping selection.
//
// The command only checks structural validity (a positive order id and a
// non-nil topping list). Semantic validation - whether the ids resolve in the
// catalog and are duplicate-free - is the handler's job, so every violated
// rule can be reported together.
//
// Example:
//
//	cmd, err := NewSetCompositionCommand(7, 3, []int{2, 3, 4, 5})
//	if err != nil {
//	    return fmt.Errorf("invalid composition request: %w", err)
//	}
//
//	handler := NewSetCompositionCommandHandler(uowFactory)
//	updated, err := handler.Handle(ctx, cmd)
type SetCompositionCommand struct { //nolint:recvcheck //using for validation
	orderID    int64
	sizeID     int
	toppingIDs []int

	guard guard.ConstructorGuard
}

// NewSetCompositionCommand creates a command to replace an order's composition.
// Validates that the order id is positive. The topping id list may be empty
// but must be present.
func NewSetCompositionCommand(orderID int64, sizeID int, toppingIDs []int) (SetCompositionCommand, error) {
	cmd := SetCompositionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSizeID(sizeID),
		cmd.setToppingIDs(toppingIDs),
	); err != nil {
		return SetCompositionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetCompositionCommandIsNotConstructed if validation fails.
func (c SetCompositionCommand) Validate() error {
	return c.guard.Validate(ErrSetCompositionCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to mutate.
func (c SetCompositionCommand) OrderID() int64 {
	return c.orderID
}

// SizeID returns the requested size id (unresolved).
func (c SetCompositionCommand) SizeID() int {
	return c.sizeID
}

// ToppingIDs returns the requested topping ids (unresolved, in request order).
func (c SetCompositionCommand) ToppingIDs() []int {
	ids := make([]int, len(c.toppingIDs))
	copy(ids, c.toppingIDs)
	return ids
}

func (c *SetCompositionCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not greater than 0", orderID))
	}

	c.orderID = orderID
	return nil
}

func (c *SetCompositionCommand) setSizeID(sizeID int) error {
	c.sizeID = sizeID
	return nil
}

func (c *SetCompositionCommand) setToppingIDs(toppingIDs []int) error {
	if toppingIDs == nil {
		return errs.NewValueIsRequiredError("topping ids")
	}

	c.toppingIDs = make([]int, len(toppingIDs))
	copy(c.toppingIDs, toppingIDs)
	return nil
}
