package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetToppingsQueryHandler retrieves the topping catalog from the database.
// Returns toppings sorted ascending by id.
type GetToppingsQueryHandler struct {
	db *gorm.DB
}

// NewGetToppingsQueryHandler creates a handler for topping catalog queries.
// Requires a GORM database connection for query execution.
func NewGetToppingsQueryHandler(db *gorm.DB) GetToppingsQueryHandler {
	return GetToppingsQueryHandler{db: db}
}

// Handle executes the query to retrieve all catalog toppings.
func (h GetToppingsQueryHandler) Handle(
	ctx context.Context,
	query GetToppingsQuery,
) ([]ToppingResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	toppings := make([]ToppingResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price
		FROM toppings
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var topping ToppingResponse
		err = rows.Scan(
			&topping.ID,
			&topping.Name,
			&topping.Price,
		)
		if err != nil {
			return nil, err
		}

		toppings = append(toppings, topping)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return toppings, nil
}
