package commands

import (
	"errors"

	"pizzeria/internal/pkg/guard"
)

var (
	ErrGetOrCreateDraftCommandIsNotConstructed = errors.New(
		"GetOrCreateDraftCommand must be created via NewGetOrCreateDraftCommand constructor",
	)
)

// GetOrCreateDraftCommand represents a request for the current draft order,
// creating one with the default composition if none exists.
//
// Example:
//
//	cmd := NewGetOrCreateDraftCommand()
//	handler := NewGetOrCreateDraftCommandHandler(uowFactory)
//
//	draft, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to obtain draft: %w", err)
//	}
//	fmt.Printf("Draft %d: %s", draft.ID(), draft.Description())
type GetOrCreateDraftCommand struct {
	guard guard.ConstructorGuard
}

// NewGetOrCreateDraftCommand creates a command to obtain the unique draft order.
// This is a parameterless command; the default composition is a domain policy.
func NewGetOrCreateDraftCommand() GetOrCreateDraftCommand {
	return GetOrCreateDraftCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
// Returns ErrGetOrCreateDraftCommandIsNotConstructed if validation fails.
func (c GetOrCreateDraftCommand) Validate() error {
	return c.guard.Validate(ErrGetOrCreateDraftCommandIsNotConstructed)
}
