package commands

import (
	"errors"
	"time"

	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/core/domain/model/order"
	"stockrequest/internal/pkg/guard"
)

var (
	ErrUpdateOrderAttributesCommandIsNotConstructed = errors.New(
		"UpdateOrderAttributesCommand must be created via NewUpdateOrderAttributesCommand constructor",
	)
	ErrNoAttributeChanges = errors.New("at least one attribute change is required")
)

// UpdateOrderAttributesCommand represents a request to change one or more
// header attributes of an order. Nil fields are left untouched; set fields
// run through the synchronization reactions and cascade to the lines.
type UpdateOrderAttributesCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	name           *string
	locationID     *kernel.UUID
	warehouseID    *kernel.UUID
	companyID      *kernel.UUID
	requestedBy    *kernel.UUID
	expectedDate   *time.Time
	shippingPolicy *order.ShippingPolicy

	guard guard.ConstructorGuard
}

// NewUpdateOrderAttributesCommand creates a command carrying the attribute
// changes to apply. At least one change must be present.
func NewUpdateOrderAttributesCommand(
	orderID kernel.UUID,
	name *string,
	locationID, warehouseID, companyID, requestedBy *kernel.UUID,
	expectedDate *time.Time,
	shippingPolicy *order.ShippingPolicy,
) (UpdateOrderAttributesCommand, error) {
	cmd := UpdateOrderAttributesCommand{
		name:           name,
		expectedDate:   expectedDate,
		shippingPolicy: shippingPolicy,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOptionalRef(&cmd.locationID, locationID),
		cmd.setOptionalRef(&cmd.warehouseID, warehouseID),
		cmd.setOptionalRef(&cmd.companyID, companyID),
		cmd.setOptionalRef(&cmd.requestedBy, requestedBy),
		cmd.validatePolicy(shippingPolicy),
	); err != nil {
		return UpdateOrderAttributesCommand{}, err
	}

	if name == nil && locationID == nil && warehouseID == nil && companyID == nil &&
		requestedBy == nil && expectedDate == nil && shippingPolicy == nil {
		return UpdateOrderAttributesCommand{}, ErrNoAttributeChanges
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderAttributesCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderAttributesCommandIsNotConstructed)
}

// OrderID returns the order to update.
func (c UpdateOrderAttributesCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Name returns the new order name, or nil.
func (c UpdateOrderAttributesCommand) Name() *string {
	return c.name
}

// LocationID returns the new destination location, or nil.
func (c UpdateOrderAttributesCommand) LocationID() *kernel.UUID {
	return c.locationID
}

// WarehouseID returns the new warehouse, or nil.
func (c UpdateOrderAttributesCommand) WarehouseID() *kernel.UUID {
	return c.warehouseID
}

// CompanyID returns the new owning company, or nil.
func (c UpdateOrderAttributesCommand) CompanyID() *kernel.UUID {
	return c.companyID
}

// RequestedBy returns the new requesting user, or nil.
func (c UpdateOrderAttributesCommand) RequestedBy() *kernel.UUID {
	return c.requestedBy
}

// ExpectedDate returns the new expected arrival date, or nil.
func (c UpdateOrderAttributesCommand) ExpectedDate() *time.Time {
	return c.expectedDate
}

// ShippingPolicy returns the new shipping policy, or nil.
func (c UpdateOrderAttributesCommand) ShippingPolicy() *order.ShippingPolicy {
	return c.shippingPolicy
}

func (c *UpdateOrderAttributesCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderAttributesCommand) setOptionalRef(target **kernel.UUID, id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}

	*target = id
	return nil
}

func (c *UpdateOrderAttributesCommand) validatePolicy(policy *order.ShippingPolicy) error {
	if policy == nil {
		return nil
	}
	return policy.Validate()
}
