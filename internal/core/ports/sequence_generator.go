package ports

import "context"

// SequenceKeyOrder is the sequence new order names draw from.
const SequenceKeyOrder = "stock.request.order"

// SequenceGenerator hands out the next name of a named sequence. Called
// exactly when an order is created without an explicit name (the "/"
// sentinel or an empty string).
type SequenceGenerator interface {
	NextName(ctx context.Context, sequenceKey string) (string, error)
}
