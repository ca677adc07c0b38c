package services

import (
	"errors"

	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/domain/model/order"
)

// ErrNoSizesInCatalog is returned when a draft cannot be created because the
// catalog holds no sizes. This indicates a seeding problem, not a client error.
var ErrNoSizesInCatalog = errors.New("no sizes in catalog")

// DraftFactory is a domain service responsible for creating the default draft
// order a customer starts from.
//
// Business rules:
//   - The default size is the catalog's largest size, taken as the last entry
//     of the size listing (the catalog lists sizes ascending by id, smallest
//     to largest)
//   - A new draft starts with no toppings
//   - The draft's price and description are computed immediately
//
// Example usage:
//
//	factory := services.NewDraftFactory()
//	sizes, _ := catalogReader.ListSizes(ctx)
//
//	draft, err := factory.CreateDraft(sizes)
//	if errors.Is(err, services.ErrNoSizesInCatalog) {
//	    // Catalog was never seeded
//	    return
//	}
type DraftFactory struct{}

// NewDraftFactory creates a new DraftFactory instance.
func NewDraftFactory() DraftFactory {
	return DraftFactory{}
}

// CreateDraft builds a new Draft order with the default composition.
//
// Parameters:
//   - sizes: The catalog's sizes, ordered ascending by id
//
// Returns:
//   - *order.Order: A Draft order with the default size and no toppings
//   - error: ErrNoSizesInCatalog if sizes is empty, or a validation error
//     if a size entry is invalid
func (f DraftFactory) CreateDraft(sizes []catalog.Size) (*order.Order, error) {
	if len(sizes) == 0 {
		return nil, ErrNoSizesInCatalog
	}

	defaultSize := sizes[len(sizes)-1]
	if err := defaultSize.Validate(); err != nil {
		return nil, err
	}

	return order.NewOrder(defaultSize, nil)
}
