// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"fmt"
	"time"

	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single pizza order with its full composition.
//
// Example:
//
//	query, err := NewGetOrderQuery(7)
//	if err != nil {
//	    return fmt.Errorf("invalid order id: %w", err)
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	result, err := handler.Handle(ctx, query)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve one order by its identifier.
// Validates that the order id is positive.
func NewGetOrderQuery(orderID int64) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to retrieve.
func (q GetOrderQuery) OrderID() int64 {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not greater than 0", orderID))
	}

	q.orderID = orderID
	return nil
}

// OrderResponse represents a pizza order in the read model, with the catalog
// rows of its composition resolved.
type OrderResponse struct {
	ID          int64
	Status      int
	Description string
	Price       decimal.Decimal
	OrderedAt   *time.Time
	Size        SizeResponse
	Toppings    []ToppingResponse
}

// SizeResponse represents a catalog size in the read model.
type SizeResponse struct {
	ID    int
	Name  string
	Price decimal.Decimal
}

// ToppingResponse represents a catalog topping in the read model.
type ToppingResponse struct {
	ID    int
	Name  string
	Price decimal.Decimal
}
