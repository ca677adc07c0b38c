package commands

import (
	"errors"
	"fmt"

	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrFinalizeOrderCommandIsNotConstructed = errors.New(
		"FinalizeOrderCommand must be created via NewFinalizeOrderCommand constructor",
	)
)

// FinalizeOrderCommand represents a request to submit an order.
//
// Example:
//
//	cmd, err := NewFinalizeOrderCommand(7)
//	if err != nil {
//	    return fmt.Errorf("invalid finalize request: %w", err)
//	}
//
//	handler := NewFinalizeOrderCommandHandler(uowFactory)
//	finalized, err := handler.Handle(ctx, cmd)
type FinalizeOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewFinalizeOrderCommand creates a command to finalize the identified order.
// Validates that the order id is positive.
func NewFinalizeOrderCommand(orderID int64) (FinalizeOrderCommand, error) {
	cmd := FinalizeOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return FinalizeOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrFinalizeOrderCommandIsNotConstructed if validation fails.
func (c FinalizeOrderCommand) Validate() error {
	return c.guard.Validate(ErrFinalizeOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to finalize.
func (c FinalizeOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c *FinalizeOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not greater than 0", orderID))
	}

	c.orderID = orderID
	return nil
}
