package queries

import (
	"errors"

	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/pkg/guard"
)

var (
	ErrGetOrderPickingsQueryIsNotConstructed = errors.New(
		"GetOrderPickingsQuery must be created via NewGetOrderPickingsQuery constructor",
	)
)

// GetOrderPickingsQuery retrieves the transfers generated for an order's
// request lines, deduplicated across lines sharing a transfer.
type GetOrderPickingsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderPickingsQuery creates a query for an order's transfers.
func NewGetOrderPickingsQuery(orderID kernel.UUID) (GetOrderPickingsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderPickingsQuery{}, err
	}

	return GetOrderPickingsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderPickingsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderPickingsQueryIsNotConstructed)
}

// OrderID returns the order whose transfers are requested.
func (q GetOrderPickingsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderPickingsQueryResponse represents one transfer of an order.
type GetOrderPickingsQueryResponse struct {
	ID     kernel.UUID
	Name   string
	LineID kernel.UUID
	State  string
}
