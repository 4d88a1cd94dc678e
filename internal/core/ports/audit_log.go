package ports

import (
	"context"

	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/core/domain/model/order"
)

// AuditLog records the change entries the aggregate accumulates on tracked
// fields. Entries are written inside the same transaction as the state
// change itself.
type AuditLog interface {
	Record(ctx context.Context, orderID kernel.UUID, changes []order.StatusChange) error
}
