package queries

import (
	"context"

	"pizzeria/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(7)
//
//	result, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // No such order
//	}
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order with its composition.
// Returns an error wrapping errs.ErrObjectNotFound when the order does not exist.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.description,
			o.price,
			o.finalized_at,
			s.id,
			s.name,
			s.price
		FROM orders o
		JOIN sizes s ON s.id = o.size_id
		WHERE o.id = ?
	`, query.OrderID()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	var response OrderResponse
	err = rows.Scan(
		&response.ID,
		&response.Status,
		&response.Description,
		&response.Price,
		&response.OrderedAt,
		&response.Size.ID,
		&response.Size.Name,
		&response.Size.Price,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	toppingsByOrder, err := loadToppings(ctx, h.db, response.ID)
	if err != nil {
		return OrderResponse{}, err
	}
	response.Toppings = toppingsByOrder[response.ID]

	return response, nil
}

// loadToppings fetches the resolved topping rows for the given orders,
// grouped by order id and sorted by topping id within each order.
func loadToppings(ctx context.Context, db *gorm.DB, orderIDs ...int64) (map[int64][]ToppingResponse, error) {
	toppings := make(map[int64][]ToppingResponse, len(orderIDs))
	for _, id := range orderIDs {
		toppings[id] = make([]ToppingResponse, 0)
	}

	if len(orderIDs) == 0 {
		return toppings, nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			ot.order_id,
			t.id,
			t.name,
			t.price
		FROM order_toppings ot
		JOIN toppings t ON t.id = ot.topping_id
		WHERE ot.order_id IN ?
		ORDER BY ot.order_id, t.id
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID int64
		var topping ToppingResponse

		err = rows.Scan(
			&orderID,
			&topping.ID,
			&topping.Name,
			&topping.Price,
		)
		if err != nil {
			return nil, err
		}

		toppings[orderID] = append(toppings[orderID], topping)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return toppings, nil
}
