package commands

import (
	"context"
	"time"
)

// PruneStaleDraftsCommandHandler removes draft orders abandoned for longer
// than the command's threshold. Invoked periodically by the cleanup job, so
// a run that finds nothing to delete is a normal outcome.
type PruneStaleDraftsCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      func() time.Time
}

// NewPruneStaleDraftsCommandHandler creates a handler for draft pruning.
func NewPruneStaleDraftsCommandHandler(uowFactory OrderUoWFactory) PruneStaleDraftsCommandHandler {
	return PruneStaleDraftsCommandHandler{
		uowFactory: uowFactory,
		clock:      time.Now,
	}
}

// NewPruneStaleDraftsCommandHandlerWithClock creates a handler with an
// explicit clock. Used by tests to control the staleness cutoff.
func NewPruneStaleDraftsCommandHandlerWithClock(
	uowFactory OrderUoWFactory,
	clock func() time.Time,
) PruneStaleDraftsCommandHandler {
	return PruneStaleDraftsCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the prune command.
// Returns the number of drafts removed.
func (h *PruneStaleDraftsCommandHandler) Handle(
	ctx context.Context,
	cmd PruneStaleDraftsCommand,
) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := h.clock().Add(-cmd.OlderThan())

	removed, err := uow.OrderRepository().DeleteStaleDrafts(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
