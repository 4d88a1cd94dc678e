package queries

import (
	"context"

	"stockrequest/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderPickingsQueryHandler retrieves the transfers of an order by
// joining the pickings generated for its request lines.
type GetOrderPickingsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderPickingsQueryHandler creates a handler for order transfer queries.
func NewGetOrderPickingsQueryHandler(db *gorm.DB) GetOrderPickingsQueryHandler {
	return GetOrderPickingsQueryHandler{db: db}
}

// Handle executes the query. Returns an empty slice for orders without
// transfers, including unknown order IDs.
func (h GetOrderPickingsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderPickingsQuery,
) ([]GetOrderPickingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pickings := make([]GetOrderPickingsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT DISTINCT
			p.id,
			p.name,
			p.line_id,
			p.state
		FROM pickings p
		JOIN request_lines l ON p.line_id = l.id
		WHERE l.order_id = ?
		ORDER BY p.name, p.id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOrderPickingsQueryResponse
		var id, lineID uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&lineID,
			&resp.State,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.LineID, err = kernel.UUIDFromBytes(lineID[:]); err != nil {
			return nil, err
		}

		pickings = append(pickings, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pickings, nil
}
