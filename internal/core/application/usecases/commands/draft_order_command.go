package commands

import (
	"errors"

	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/pkg/guard"
)

var ErrDraftOrderCommandIsNotConstructed = errors.New(
	"DraftOrderCommand must be created via NewDraftOrderCommand constructor",
)

// DraftOrderCommand represents a request to revert a confirmed or cancelled
// order back to draft.
type DraftOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDraftOrderCommand creates a command to reset the given order to draft.
func NewDraftOrderCommand(orderID kernel.UUID) (DraftOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return DraftOrderCommand{}, err
	}

	return DraftOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DraftOrderCommand) Validate() error {
	return c.guard.Validate(ErrDraftOrderCommandIsNotConstructed)
}

// OrderID returns the order to reset.
func (c DraftOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
