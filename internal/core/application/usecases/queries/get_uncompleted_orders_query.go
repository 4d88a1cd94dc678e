package queries

import (
	"errors"
	"time"

	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/pkg/guard"
)

var (
	ErrGetUncompletedOrdersQueryIsNotConstructed = errors.New(
		"GetUncompletedOrdersQuery must be created via NewGetUncompletedOrdersQuery constructor",
	)
)

// GetUncompletedOrdersQuery retrieves all orders that are still in progress.
// Returns orders in "Draft" or "Open" status for monitoring and the periodic
// completion sweep.
//
// Example:
//
//	query := NewGetUncompletedOrdersQuery()
//	handler := NewGetUncompletedOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get uncompleted orders: %w", err)
//	}
//
//	fmt.Printf("Found %d orders in progress\n", len(orders))
//	for _, o := range orders {
//	    fmt.Printf("Order %s (%s): %d lines\n", o.Name, o.Status, o.RequestCount)
//	}
type GetUncompletedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUncompletedOrdersQuery creates a query to retrieve in-progress orders.
// This is a parameterless query that fetches all orders outside the Done and
// Cancelled statuses.
func NewGetUncompletedOrdersQuery() GetUncompletedOrdersQuery {
	return GetUncompletedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUncompletedOrdersQueryIsNotConstructed if validation fails.
func (q GetUncompletedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUncompletedOrdersQueryIsNotConstructed)
}

// GetUncompletedOrdersQueryResponse represents one in-progress order.
type GetUncompletedOrdersQueryResponse struct {
	ID           kernel.UUID
	Name         string
	Status       string
	ExpectedDate time.Time
	RequestCount int
}
