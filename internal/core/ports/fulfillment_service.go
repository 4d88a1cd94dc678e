package ports

import (
	"context"

	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/core/domain/model/order"
)

// Picking is a read-only projection of one transfer generated for a request
// line.
type Picking struct {
	ID          kernel.UUID
	Name        string
	LineID      kernel.UUID
	GroupingKey string
	State       string
}

// Move is a read-only projection of one stock move generated for a request
// line.
type Move struct {
	ID        kernel.UUID
	LineID    kernel.UUID
	ProductID kernel.UUID
	Quantity  string
	State     string
}

// FulfillmentService realizes the lifecycle transitions of request lines in
// the fulfillment subsystem: confirming a line generates the transfers that
// will eventually satisfy it, cancelling and resetting tear them down.
//
// Pickings and moves are read-only aggregates per line; callers roll them up
// to the order by unioning over its lines.
type FulfillmentService interface {
	// ConfirmLine hands a confirmed line to fulfillment, generating its
	// transfers under the line's grouping key.
	ConfirmLine(ctx context.Context, line *order.RequestLine) error

	// CancelLine withdraws a line from fulfillment.
	CancelLine(ctx context.Context, line *order.RequestLine) error

	// ResetLine reverts a line's fulfillment state when the order goes back
	// to draft.
	ResetLine(ctx context.Context, line *order.RequestLine) error

	// GetPickingsOfLines retrieves the pickings generated for the given
	// lines, deduplicated.
	GetPickingsOfLines(ctx context.Context, lineIDs []kernel.UUID) ([]Picking, error)

	// GetMovesOfLines retrieves the stock moves generated for the given
	// lines.
	GetMovesOfLines(ctx context.Context, lineIDs []kernel.UUID) ([]Move, error)
}
