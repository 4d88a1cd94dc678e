package queries

import (
	"errors"

	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/pkg/guard"
)

var (
	ErrGetOrderMovesQueryIsNotConstructed = errors.New(
		"GetOrderMovesQuery must be created via NewGetOrderMovesQuery constructor",
	)
)

// GetOrderMovesQuery retrieves the stock moves generated for an order's
// request lines.
type GetOrderMovesQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderMovesQuery creates a query for an order's stock moves.
func NewGetOrderMovesQuery(orderID kernel.UUID) (GetOrderMovesQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderMovesQuery{}, err
	}

	return GetOrderMovesQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderMovesQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderMovesQueryIsNotConstructed)
}

// OrderID returns the order whose moves are requested.
func (q GetOrderMovesQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderMovesQueryResponse represents one stock move of an order.
type GetOrderMovesQueryResponse struct {
	ID        kernel.UUID
	PickingID kernel.UUID
	LineID    kernel.UUID
	ProductID kernel.UUID
	Quantity  string
	State     string
}
