package ports

import (
	"context"
	"time"

	"pizzeria/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and deleting orders and for
// locating the unique draft.
type OrderRepository interface {
	// Add persists a new order aggregate to storage and assigns its identifier.
	// Returns an ObjectAlreadyExistsError wrapping errs.ErrObjectAlreadyExists
	// when inserting a second Draft would violate the single-draft constraint.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier.
	// Returns an error wrapping errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetAll retrieves every stored order, ordered ascending by id.
	// Used for the order history listing.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetDraft retrieves the unique order in Draft status.
	// Returns an error wrapping errs.ErrObjectNotFound when no draft exists.
	GetDraft(ctx context.Context) (*order.Order, error)

	// Delete removes an order in any state.
	// Returns an error wrapping errs.ErrObjectNotFound when absent.
	Delete(ctx context.Context, id int64) error

	// DeleteStaleDrafts removes drafts whose last modification is older than
	// the cutoff. Returns the number of drafts removed.
	DeleteStaleDrafts(ctx context.Context, cutoff time.Time) (int64, error)
}
