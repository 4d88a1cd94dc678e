package ports

import (
	"context"

	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order header
// aggregates. Headers are stored together with their request lines; loading
// a header always loads its full line set.
type OrderRepository interface {
	// Add persists a new order aggregate with its lines.
	// Fails when the (name, company) pair is already taken.
	Add(ctx context.Context, aggregate *order.OrderHeader) error

	// Update persists changes to an existing order aggregate, replacing its
	// stored line set with the aggregate's current one.
	Update(ctx context.Context, aggregate *order.OrderHeader) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.OrderHeader, error)

	// GetForUpdate retrieves an order aggregate and takes a row lock on it
	// for the rest of the transaction. Lifecycle operations load through
	// this method so two concurrent confirmations of the same header
	// serialize instead of both handing lines to fulfillment.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.OrderHeader, error)

	// GetAllInOpenStatus retrieves every order currently in Open status.
	// Used by the completion probe.
	GetAllInOpenStatus(ctx context.Context) ([]*order.OrderHeader, error)

	// Delete removes an order and its lines. Callers check the draft-only
	// guard on the aggregate before invoking it.
	Delete(ctx context.Context, id kernel.UUID) error
}
