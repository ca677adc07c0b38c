package commands

import (
	"errors"
	"fmt"
	"time"

	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrPruneStaleDraftsCommandIsNotConstructed = errors.New(
		"PruneStaleDraftsCommand must be created via NewPruneStaleDraftsCommand constructor",
	)
)

// PruneStaleDraftsCommand represents a request to remove draft orders that
// have not been touched for longer than the given duration. Issued by the
// background cleanup job.
//
// Example:
//
//	cmd, err := NewPruneStaleDraftsCommand(30 * time.Minute)
//	if err != nil {
//	    return fmt.Errorf("invalid prune request: %w", err)
//	}
//
//	handler := NewPruneStaleDraftsCommandHandler(uowFactory)
//	removed, err := handler.Handle(ctx, cmd)
type PruneStaleDraftsCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewPruneStaleDraftsCommand creates a command to prune abandoned drafts.
// Validates that the staleness threshold is positive.
func NewPruneStaleDraftsCommand(olderThan time.Duration) (PruneStaleDraftsCommand, error) {
	cmd := PruneStaleDraftsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOlderThan(olderThan); err != nil {
		return PruneStaleDraftsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPruneStaleDraftsCommandIsNotConstructed if validation fails.
func (c PruneStaleDraftsCommand) Validate() error {
	return c.guard.Validate(ErrPruneStaleDraftsCommandIsNotConstructed)
}

// OlderThan returns the staleness threshold.
func (c PruneStaleDraftsCommand) OlderThan() time.Duration {
	return c.olderThan
}

func (c *PruneStaleDraftsCommand) setOlderThan(olderThan time.Duration) error {
	if olderThan <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("older than",
			fmt.Errorf("%s is not greater than 0", olderThan))
	}

	c.olderThan = olderThan
	return nil
}
