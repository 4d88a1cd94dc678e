package queries

import (
	"context"

	"stockrequest/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderMovesQueryHandler retrieves the stock moves of an order by
// joining the moves generated for its request lines.
type GetOrderMovesQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderMovesQueryHandler creates a handler for order move queries.
func NewGetOrderMovesQueryHandler(db *gorm.DB) GetOrderMovesQueryHandler {
	return GetOrderMovesQueryHandler{db: db}
}

// Handle executes the query. Returns an empty slice for orders without
// moves, including unknown order IDs.
func (h GetOrderMovesQueryHandler) Handle(
	ctx context.Context,
	query GetOrderMovesQuery,
) ([]GetOrderMovesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	moves := make([]GetOrderMovesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			m.id,
			m.picking_id,
			m.line_id,
			m.product_id,
			m.quantity,
			m.state
		FROM moves m
		JOIN request_lines l ON m.line_id = l.id
		WHERE l.order_id = ?
		ORDER BY m.id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOrderMovesQueryResponse
		var id, pickingID, lineID, productID uuid.UUID

		err = rows.Scan(
			&id,
			&pickingID,
			&lineID,
			&productID,
			&resp.Quantity,
			&resp.State,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.PickingID, err = kernel.UUIDFromBytes(pickingID[:]); err != nil {
			return nil, err
		}
		if resp.LineID, err = kernel.UUIDFromBytes(lineID[:]); err != nil {
			return nil, err
		}
		if resp.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}

		moves = append(moves, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return moves, nil
}
