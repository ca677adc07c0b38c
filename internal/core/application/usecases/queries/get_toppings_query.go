package queries

import (
	"errors"

	"pizzeria/internal/pkg/guard"
)

var (
	ErrGetToppingsQueryIsNotConstructed = errors.New(
		"GetToppingsQuery must be created via NewGetToppingsQuery constructor",
	)
)

// GetToppingsQuery retrieves the catalog of pizza toppings with current prices.
type GetToppingsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetToppingsQuery creates a query to retrieve all catalog toppings.
func NewGetToppingsQuery() GetToppingsQuery {
	return GetToppingsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetToppingsQueryIsNotConstructed if validation fails.
func (q GetToppingsQuery) Validate() error {
	return q.guard.Validate(ErrGetToppingsQueryIsNotConstructed)
}
