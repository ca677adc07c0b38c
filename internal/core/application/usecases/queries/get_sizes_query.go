package queries

import (
	"errors"

	"pizzeria/internal/pkg/guard"
)

var (
	ErrGetSizesQueryIsNotConstructed = errors.New(
		"GetSizesQuery must be created via NewGetSizesQuery constructor",
	)
)

// GetSizesQuery retrieves the catalog of pizza sizes with current prices.
//
// Example:
//
//	query := NewGetSizesQuery()
//	handler := NewGetSizesQueryHandler(db)
//
//	sizes, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve sizes: %w", err)
//	}
type GetSizesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetSizesQuery creates a query to retrieve all catalog sizes.
func NewGetSizesQuery() GetSizesQuery {
	return GetSizesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetSizesQueryIsNotConstructed if validation fails.
func (q GetSizesQuery) Validate() error {
	return q.guard.Validate(ErrGetSizesQueryIsNotConstructed)
}
