package commands

import (
	"errors"
	"time"

	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/core/domain/model/order"
	"stockrequest/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCreateOrderLineIsNotConstructed = errors.New(
		"CreateOrderLine must be created via NewCreateOrderLine constructor",
	)
	ErrLineQuantityIsNegative = errors.New("line quantity must not be negative")
)

// NameSentinel marks an order name to be drawn from the sequence generator
// instead of taken verbatim.
const NameSentinel = "/"

// CreateOrderLine carries the data of one request line to create with the
// order.
type CreateOrderLine struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	unitID    kernel.UUID
	quantity  decimal.Decimal
	routeID   *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderLine creates a line input for CreateOrderCommand.
func NewCreateOrderLine(
	productID, unitID kernel.UUID, quantity decimal.Decimal, routeID *kernel.UUID,
) (CreateOrderLine, error) {
	line := CreateOrderLine{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setProductID(productID),
		line.setUnitID(unitID),
		line.setQuantity(quantity),
		line.setRouteID(routeID),
	); err != nil {
		return CreateOrderLine{}, err
	}

	return line, nil
}

// Validate ensures the line was created through the constructor.
func (l CreateOrderLine) Validate() error {
	return l.guard.Validate(ErrCreateOrderLineIsNotConstructed)
}

// ProductID returns the product variant to request.
func (l CreateOrderLine) ProductID() kernel.UUID {
	return l.productID
}

// UnitID returns the unit of measure.
func (l CreateOrderLine) UnitID() kernel.UUID {
	return l.unitID
}

// Quantity returns the requested quantity.
func (l CreateOrderLine) Quantity() decimal.Decimal {
	return l.quantity
}

// RouteID returns the requested route, or nil.
func (l CreateOrderLine) RouteID() *kernel.UUID {
	return l.routeID
}

func (l *CreateOrderLine) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.productID = id
	return nil
}

func (l *CreateOrderLine) setUnitID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.unitID = id
	return nil
}

func (l *CreateOrderLine) setQuantity(quantity decimal.Decimal) error {
	if quantity.IsNegative() {
		return ErrLineQuantityIsNegative
	}
	l.quantity = quantity
	return nil
}

func (l *CreateOrderLine) setRouteID(routeID *kernel.UUID) error {
	if routeID == nil {
		return nil
	}
	if err := routeID.Validate(); err != nil {
		return err
	}
	l.routeID = routeID
	return nil
}

// CreateOrderCommand represents a request to create a new stock request
// order. Every field beyond the order ID is optional: the name defaults to
// the sequence, the requester and company default from the acting session,
// the warehouse to the first warehouse of the company and the location to
// that warehouse's default stock location.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "/", nil, nil, nil, nil, nil, 0, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, session, warehouses)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	name           string
	requestedBy    *kernel.UUID
	warehouseID    *kernel.UUID
	locationID     *kernel.UUID
	companyID      *kernel.UUID
	expectedDate   *time.Time
	shippingPolicy order.ShippingPolicy
	lines          []CreateOrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Optional references are validated when present; the shipping policy may be
// left at its zero value to take the default.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	name string,
	requestedBy, warehouseID, locationID, companyID *kernel.UUID,
	expectedDate *time.Time,
	shippingPolicy order.ShippingPolicy,
	lines []CreateOrderLine,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		name:           name,
		expectedDate:   expectedDate,
		shippingPolicy: shippingPolicy,
		lines:          lines,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOptionalRef(&cmd.requestedBy, requestedBy),
		cmd.setOptionalRef(&cmd.warehouseID, warehouseID),
		cmd.setOptionalRef(&cmd.locationID, locationID),
		cmd.setOptionalRef(&cmd.companyID, companyID),
		cmd.validateShippingPolicy(shippingPolicy),
		cmd.validateLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Name returns the requested order name. Empty or the "/" sentinel means the
// name comes from the sequence generator.
func (c CreateOrderCommand) Name() string {
	return c.name
}

// RequestedBy returns the requesting user, or nil to default to the acting
// user.
func (c CreateOrderCommand) RequestedBy() *kernel.UUID {
	return c.requestedBy
}

// WarehouseID returns the requested warehouse, or nil to default.
func (c CreateOrderCommand) WarehouseID() *kernel.UUID {
	return c.warehouseID
}

// LocationID returns the requested location, or nil to default.
func (c CreateOrderCommand) LocationID() *kernel.UUID {
	return c.locationID
}

// CompanyID returns the owning company, or nil to default to the session
// company.
func (c CreateOrderCommand) CompanyID() *kernel.UUID {
	return c.companyID
}

// ExpectedDate returns the expected arrival date, or nil to default to now.
func (c CreateOrderCommand) ExpectedDate() *time.Time {
	return c.expectedDate
}

// ShippingPolicy returns the shipping policy; UnknownPolicy means the
// default applies.
func (c CreateOrderCommand) ShippingPolicy() order.ShippingPolicy {
	return c.shippingPolicy
}

// Lines returns the lines to create with the order.
func (c CreateOrderCommand) Lines() []CreateOrderLine {
	return c.lines
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOptionalRef(target **kernel.UUID, id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}

	*target = id
	return nil
}

func (c *CreateOrderCommand) validateShippingPolicy(policy order.ShippingPolicy) error {
	if policy == order.UnknownPolicy {
		return nil
	}
	return policy.Validate()
}

func (c *CreateOrderCommand) validateLines(lines []CreateOrderLine) error {
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	return nil
}
