package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/core/domain/model/order"
	"stockrequest/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderSummaryQueryHandler retrieves one order's header attributes with
// the line and transfer counters rolled up in a single round trip.
type GetOrderSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderSummaryQueryHandler creates a handler for order summary queries.
func NewGetOrderSummaryQueryHandler(db *gorm.DB) GetOrderSummaryQueryHandler {
	return GetOrderSummaryQueryHandler{db: db}
}

// Handle executes the summary query. Returns ErrObjectNotFound when no order
// with the given ID exists.
func (h GetOrderSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderSummaryQuery,
) (GetOrderSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			h.id,
			h.name,
			h.status,
			h.warehouse_id,
			h.location_id,
			h.company_id,
			h.requested_by,
			h.expected_date,
			h.shipping_policy,
			h.grouping_key_name,
			(SELECT COUNT(*)
			   FROM request_lines l
			  WHERE l.order_id = h.id) AS request_count,
			(SELECT COUNT(DISTINCT p.id)
			   FROM pickings p
			   JOIN request_lines l ON p.line_id = l.id
			  WHERE l.order_id = h.id) AS picking_count
		FROM order_headers h
		WHERE h.id = ?
	`, query.OrderID().Bytes()).Row()

	var resp GetOrderSummaryQueryResponse
	var id, warehouseID, locationID, companyID, requestedBy uuid.UUID
	var status, shippingPolicy int
	var expectedDate time.Time
	var groupingKeyName sql.NullString

	err := row.Scan(
		&id,
		&resp.Name,
		&status,
		&warehouseID,
		&locationID,
		&companyID,
		&requestedBy,
		&expectedDate,
		&shippingPolicy,
		&groupingKeyName,
		&resp.RequestCount,
		&resp.PickingCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderSummaryQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderSummaryQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}
	if resp.WarehouseID, err = kernel.UUIDFromBytes(warehouseID[:]); err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}
	if resp.LocationID, err = kernel.UUIDFromBytes(locationID[:]); err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}
	if resp.CompanyID, err = kernel.UUIDFromBytes(companyID[:]); err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}
	if resp.RequestedBy, err = kernel.UUIDFromBytes(requestedBy[:]); err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	resp.Status = order.Status(status).String()
	resp.ShippingPolicy = order.ShippingPolicy(shippingPolicy).String()
	resp.ExpectedDate = expectedDate
	if groupingKeyName.Valid {
		resp.GroupingKey = &groupingKeyName.String
	}

	return resp, nil
}
