package commands

import (
	"errors"

	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/pkg/guard"
)

var ErrApplyTemplateCommandIsNotConstructed = errors.New(
	"ApplyTemplateCommand must be created via NewApplyTemplateCommand constructor",
)

// ApplyTemplateCommand represents a request to expand a template into an
// order: the order's current lines are discarded and recreated from the
// template's line defaults.
type ApplyTemplateCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	templateID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApplyTemplateCommand creates a command expanding the given template
// into the given order.
func NewApplyTemplateCommand(orderID, templateID kernel.UUID) (ApplyTemplateCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		templateID.Validate(),
	); err != nil {
		return ApplyTemplateCommand{}, err
	}

	return ApplyTemplateCommand{
		orderID:    orderID,
		templateID: templateID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyTemplateCommand) Validate() error {
	return c.guard.Validate(ErrApplyTemplateCommandIsNotConstructed)
}

// OrderID returns the order whose lines are replaced.
func (c ApplyTemplateCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TemplateID returns the template to expand.
func (c ApplyTemplateCommand) TemplateID() kernel.UUID {
	return c.templateID
}
