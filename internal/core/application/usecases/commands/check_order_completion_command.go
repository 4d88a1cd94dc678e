package commands

import (
	"errors"

	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/pkg/guard"
)

var ErrCheckOrderCompletionCommandIsNotConstructed = errors.New(
	"CheckOrderCompletionCommand must be created via NewCheckOrderCompletionCommand constructor",
)

// CheckOrderCompletionCommand represents the explicit completion probe: the
// order becomes Done exactly when no line remains undone. The probe is
// invoked by whatever process updates line statuses, not by the line updates
// themselves.
type CheckOrderCompletionCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCheckOrderCompletionCommand creates a command probing the given order.
func NewCheckOrderCompletionCommand(orderID kernel.UUID) (CheckOrderCompletionCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CheckOrderCompletionCommand{}, err
	}

	return CheckOrderCompletionCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckOrderCompletionCommand) Validate() error {
	return c.guard.Validate(ErrCheckOrderCompletionCommandIsNotConstructed)
}

// OrderID returns the order to probe.
func (c CheckOrderCompletionCommand) OrderID() kernel.UUID {
	return c.orderID
}
