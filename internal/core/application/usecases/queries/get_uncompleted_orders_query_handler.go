package queries

import (
	"context"
	"time"

	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUncompletedOrdersQueryHandler retrieves in-progress orders from the
// database. Filters out done and cancelled orders to provide the active
// workload, with the line count rolled up per order.
//
// Example:
//
//	handler := NewGetUncompletedOrdersQueryHandler(db)
//	query := NewGetUncompletedOrdersQuery()
//
//	openOrders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get uncompleted orders: %v", err)
//	    return err
//	}
type GetUncompletedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUncompletedOrdersQueryHandler creates a handler for in-progress order queries.
// Requires a GORM database connection for query execution.
func NewGetUncompletedOrdersQueryHandler(db *gorm.DB) GetUncompletedOrdersQueryHandler {
	return GetUncompletedOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all uncompleted orders.
// Returns orders in "Draft" or "Open" status, excluding done and cancelled
// ones. Results are sorted by order ID for consistent output.
func (h GetUncompletedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUncompletedOrdersQuery,
) ([]GetUncompletedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUncompletedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			h.id,
			h.name,
			h.status,
			h.expected_date,
			COUNT(l.id)
		FROM order_headers h
		LEFT JOIN request_lines l ON l.order_id = h.id
		WHERE h.status NOT IN (?, ?)
		GROUP BY h.id, h.name, h.status, h.expected_date
		ORDER BY h.id
	`, order.Done, order.Cancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetUncompletedOrdersQueryResponse
		var id uuid.UUID
		var status int
		var expectedDate time.Time

		err = rows.Scan(
			&id,
			&orderResp.Name,
			&status,
			&expectedDate,
			&orderResp.RequestCount,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID
		orderResp.Status = order.Status(status).String()
		orderResp.ExpectedDate = expectedDate

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
