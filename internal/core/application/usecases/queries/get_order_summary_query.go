package queries

import (
	"errors"
	"time"

	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/pkg/guard"
)

var (
	ErrGetOrderSummaryQueryIsNotConstructed = errors.New(
		"GetOrderSummaryQuery must be created via NewGetOrderSummaryQuery constructor",
	)
)

// GetOrderSummaryQuery retrieves one order with its rolled-up counters: the
// number of request lines and the number of distinct transfers generated for
// them.
type GetOrderSummaryQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderSummaryQuery creates a query for one order's summary.
func NewGetOrderSummaryQuery(orderID kernel.UUID) (GetOrderSummaryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderSummaryQuery{}, err
	}

	return GetOrderSummaryQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSummaryQueryIsNotConstructed)
}

// OrderID returns the order to summarize.
func (q GetOrderSummaryQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderSummaryQueryResponse represents the order header with its counters.
// GroupingKey is nil for orders that were never confirmed.
type GetOrderSummaryQueryResponse struct {
	ID             kernel.UUID
	Name           string
	Status         string
	WarehouseID    kernel.UUID
	LocationID     kernel.UUID
	CompanyID      kernel.UUID
	RequestedBy    kernel.UUID
	ExpectedDate   time.Time
	ShippingPolicy string
	GroupingKey    *string
	RequestCount   int
	PickingCount   int
}
