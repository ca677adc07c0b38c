package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetSizesQueryHandler retrieves the size catalog from the database.
// Returns sizes sorted ascending by id, smallest to largest.
type GetSizesQueryHandler struct {
	db *gorm.DB
}

// NewGetSizesQueryHandler creates a handler for size catalog queries.
// Requires a GORM database connection for query execution.
func NewGetSizesQueryHandler(db *gorm.DB) GetSizesQueryHandler {
	return GetSizesQueryHandler{db: db}
}

// Handle executes the query to retrieve all catalog sizes.
func (h GetSizesQueryHandler) Handle(
	ctx context.Context,
	query GetSizesQuery,
) ([]SizeResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sizes := make([]SizeResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price
		FROM sizes
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var size SizeResponse
		err = rows.Scan(
			&size.ID,
			&size.Name,
			&size.Price,
		)
		if err != nil {
			return nil, err
		}

		sizes = append(sizes, size)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return sizes, nil
}
