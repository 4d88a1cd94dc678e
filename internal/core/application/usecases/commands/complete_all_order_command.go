package commands

import (
	"errors"

	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/pkg/guard"
)

var ErrCompleteAllOrderCommandIsNotConstructed = errors.New(
	"CompleteAllOrderCommand must be created via NewCompleteAllOrderCommand constructor",
)

// CompleteAllOrderCommand represents a request to force an order and all of
// its lines into Done.
type CompleteAllOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteAllOrderCommand creates a command to complete the given order.
func NewCompleteAllOrderCommand(orderID kernel.UUID) (CompleteAllOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CompleteAllOrderCommand{}, err
	}

	return CompleteAllOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteAllOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteAllOrderCommandIsNotConstructed)
}

// OrderID returns the order to complete.
func (c CompleteAllOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
