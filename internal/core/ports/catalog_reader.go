package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/catalog"
)

// CatalogReader defines the read-only contract over the reference catalog.
// Seeding and administration of the catalog are outside the core; the core
// only resolves ids and lists the available options.
type CatalogReader interface {
	// GetSize retrieves a size by its catalog identifier.
	// Returns an error wrapping errs.ErrObjectNotFound when absent.
	GetSize(ctx context.Context, id int) (catalog.Size, error)

	// GetTopping retrieves a topping by its catalog identifier.
	// Returns an error wrapping errs.ErrObjectNotFound when absent.
	GetTopping(ctx context.Context, id int) (catalog.Topping, error)

	// ListSizes retrieves every size, ordered ascending by id
	// (smallest to largest).
	ListSizes(ctx context.Context) ([]catalog.Size, error)

	// ListToppings retrieves every topping, ordered ascending by id.
	ListToppings(ctx context.Context) ([]catalog.Topping, error)
}
