package commands

import (
	"context"
	"errors"
	"fmt"

	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/pkg/errs"
)

// SetCompositionCommandHandler handles the business logic for replacing an
// order's composition.
//
// Validation is deliberately fail-together, not fail-fast: the handler checks
// the size id and every topping id against the catalog, collects one message
// per violated rule, and returns them all in a single ValidationFailedError
// so the caller can present every problem at once. The stored order is left
// untouched on validation failure.
//
// Example:
//
//	handler := NewSetCompositionCommandHandler(uowFactory)
//	cmd, _ := NewSetCompositionCommand(7, 3, []int{2, 3, 4, 5})
//
//	updated, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrValidationFailed) {
//	    // Present every violation to the customer
//	}
type SetCompositionCommandHandler struct {
	uowFactory UoWFactory
}

// NewSetCompositionCommandHandler creates a handler for composition changes.
// Requires a UoWFactory for transactional persistence and catalog access.
func NewSetCompositionCommandHandler(uowFactory UoWFactory) SetCompositionCommandHandler {
	return SetCompositionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the composition change.
// Resolves the requested ids against the catalog, replaces the order's
// composition, recomputes price and description, and persists the result.
func (h *SetCompositionCommandHandler) Handle(
	ctx context.Context,
	cmd SetCompositionCommand,
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

	size, toppings, err := h.resolveComposition(ctx, uow.CatalogReader(), cmd.SizeID(), cmd.ToppingIDs())
	if err != nil {
		return nil, err
	}

	if err = aggregate.SetComposition(size, toppings); err != nil {
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

// resolveComposition resolves the requested ids against the catalog,
// collecting every violation instead of stopping at the first.
func (h *SetCompositionCommandHandler) resolveComposition(
	ctx context.Context,
	catalogReader ports.CatalogReader,
	sizeID int,
	toppingIDs []int,
) (catalog.Size, []catalog.Topping, error) {
	var violations []string

	size, err := catalogReader.GetSize(ctx, sizeID)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		violations = append(violations, fmt.Sprintf("Size %d does not exist in the catalog.", sizeID))
	case err != nil:
		return catalog.Size{}, nil, err
	}

	toppings := make([]catalog.Topping, 0, len(toppingIDs))
	seen := make(map[int]struct{}, len(toppingIDs))
	for _, toppingID := range toppingIDs {
		if _, ok := seen[toppingID]; ok {
			violations = append(violations,
				fmt.Sprintf("Topping %d is selected more than once.", toppingID))
			continue
		}
		seen[toppingID] = struct{}{}

		topping, toppingErr := catalogReader.GetTopping(ctx, toppingID)
		switch {
		case errors.Is(toppingErr, errs.ErrObjectNotFound):
			violations = append(violations,
				fmt.Sprintf("Topping %d does not exist in the catalog.", toppingID))
		case toppingErr != nil:
			return catalog.Size{}, nil, toppingErr
		default:
			toppings = append(toppings, topping)
		}
	}

	if len(violations) > 0 {
		return catalog.Size{}, nil, errs.NewValidationFailedError(violations)
	}

	return size, toppings, nil
}
