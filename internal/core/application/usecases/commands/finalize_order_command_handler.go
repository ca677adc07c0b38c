package commands

import (
	"context"
	"time"

	"pizzeria/internal/core/domain/model/order"
)

// FinalizeOrderCommandHandler handles the business logic for order submission.
//
// Finalizing recomputes the price and description from the order's current
// composition (guarding against staleness), stamps the finalization time, and
// moves the order into Finalized status. Finalizing an already-Finalized
// order is accepted and re-stamps the timestamp; this mirrors the submission
// endpoint's observed behavior and is a deliberate decision.
//
// Example:
//
//	handler := NewFinalizeOrderCommandHandler(uowFactory)
//	cmd, _ := NewFinalizeOrderCommand(7)
//
//	finalized, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // No such order
//	}
type FinalizeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      func() time.Time
}

// NewFinalizeOrderCommandHandler creates a handler for order submission.
// Requires an OrderUoWFactory for transactional persistence.
func NewFinalizeOrderCommandHandler(uowFactory OrderUoWFactory) FinalizeOrderCommandHandler {
	return FinalizeOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      time.Now,
	}
}

// NewFinalizeOrderCommandHandlerWithClock creates a handler with an explicit
// clock. Used by tests to control the finalization timestamp.
func NewFinalizeOrderCommandHandlerWithClock(
	uowFactory OrderUoWFactory,
	clock func() time.Time,
) FinalizeOrderCommandHandler {
	return FinalizeOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the finalize command.
// Returns the finalized order, or an error wrapping errs.ErrObjectNotFound
// when the order does not exist.
func (h *FinalizeOrderCommandHandler) Handle(
	ctx context.Context,
	cmd FinalizeOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Finalize(h.clock()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
