package ports

import (
	"context"

	"stockrequest/internal/core/domain/model/order"
)

// GroupingKeyFactory creates the grouping keys the fulfillment subsystem
// batches an order's transfers under. Confirmation creates one named after
// the order when the header has none.
type GroupingKeyFactory interface {
	Create(ctx context.Context, name string) (order.GroupingKey, error)
}
