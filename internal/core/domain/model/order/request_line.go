package order

import (
	"errors"
	"fmt"
	"time"

	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/pkg/errs"
	"stockrequest/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrRequestLineIsNotConstructed is returned when using an improperly initialized RequestLine.
	ErrRequestLineIsNotConstructed = errors.New("RequestLine must be created via NewRequestLine constructor")
	// ErrQuantityIsNegative is returned when a line is created with a negative quantity.
	ErrQuantityIsNegative = errors.New("quantity must not be negative")
)

// RequestLine is one product/quantity request belonging to an order.
// Lines are first-class records that can be queried on their own, but they
// are owned exclusively by their order: the warehouse, location, company,
// shipping policy, expected date, requester and grouping key of a line are
// derived from the order header, never authored independently. Only the
// product, unit, quantity, route and the line's own status belong to the
// line itself.
type RequestLine struct {
	// id uniquely identifies the line
	id kernel.UUID
	// orderID is the owning order header
	orderID kernel.UUID
	// productID is the requested product variant
	productID kernel.UUID
	// unitID is the unit of measure for quantity
	unitID kernel.UUID
	// quantity is the requested amount; zero is allowed at creation and
	// resolved before fulfillment
	quantity decimal.Decimal
	// routeID optionally pins the sourcing route for this line
	routeID *kernel.UUID
	// status is the line's own lifecycle state
	status Status

	// attributes mirrored from the order header
	warehouseID    kernel.UUID
	locationID     kernel.UUID
	companyID      kernel.UUID
	shippingPolicy ShippingPolicy
	expectedDate   time.Time
	requestedBy    kernel.UUID
	groupingKey    *GroupingKey

	guard guard.ConstructorGuard
}

// NewRequestLine creates a new line in Draft status.
// The header-mirrored attributes stay zero until the line is attached to an
// order, which immediately propagates the header's values onto it.
func NewRequestLine(
	id, productID, unitID kernel.UUID,
	quantity decimal.Decimal,
	routeID *kernel.UUID,
) (*RequestLine, error) {
	line := &RequestLine{
		status: Draft,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setID(id),
		line.setProductID(productID),
		line.setUnitID(unitID),
		line.setQuantity(quantity),
		line.setRouteID(routeID),
	); err != nil {
		return nil, err
	}

	return line, nil
}

// RestoreRequestLine reconstructs a RequestLine from persistent storage,
// including its mirrored header attributes and lifecycle state.
func RestoreRequestLine(
	id, orderID, productID, unitID kernel.UUID,
	quantity decimal.Decimal,
	routeID *kernel.UUID,
	status Status,
	shared SharedAttributes,
) (*RequestLine, error) {
	line := &RequestLine{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setID(id),
		line.setProductID(productID),
		line.setUnitID(unitID),
		line.setQuantity(quantity),
		line.setRouteID(routeID),
		status.Validate(),
		orderID.Validate(),
	); err != nil {
		return nil, err
	}

	line.orderID = orderID
	line.status = status
	line.applyShared(shared)

	return line, nil
}

// Validate ensures the RequestLine was created through a constructor.
func (l *RequestLine) Validate() error {
	if l == nil {
		return ErrRequestLineIsNotConstructed
	}
	return l.guard.Validate(ErrRequestLineIsNotConstructed)
}

// ID returns the line identifier.
func (l *RequestLine) ID() kernel.UUID {
	return l.id
}

// OrderID returns the owning order header.
func (l *RequestLine) OrderID() kernel.UUID {
	return l.orderID
}

// ProductID returns the requested product variant.
func (l *RequestLine) ProductID() kernel.UUID {
	return l.productID
}

// UnitID returns the unit of measure for the quantity.
func (l *RequestLine) UnitID() kernel.UUID {
	return l.unitID
}

// Quantity returns the requested amount.
func (l *RequestLine) Quantity() decimal.Decimal {
	return l.quantity
}

// RouteID returns the pinned sourcing route, or nil.
func (l *RequestLine) RouteID() *kernel.UUID {
	return l.routeID
}

// Status returns the line's own lifecycle state.
func (l *RequestLine) Status() Status {
	return l.status
}

// WarehouseID returns the warehouse mirrored from the header.
func (l *RequestLine) WarehouseID() kernel.UUID {
	return l.warehouseID
}

// LocationID returns the location mirrored from the header.
func (l *RequestLine) LocationID() kernel.UUID {
	return l.locationID
}

// CompanyID returns the company mirrored from the header.
func (l *RequestLine) CompanyID() kernel.UUID {
	return l.companyID
}

// ShippingPolicy returns the shipping policy mirrored from the header.
func (l *RequestLine) ShippingPolicy() ShippingPolicy {
	return l.shippingPolicy
}

// ExpectedDate returns the expected date mirrored from the header.
func (l *RequestLine) ExpectedDate() time.Time {
	return l.expectedDate
}

// RequestedBy returns the requester mirrored from the header.
func (l *RequestLine) RequestedBy() kernel.UUID {
	return l.requestedBy
}

// GroupingKey returns the grouping key mirrored from the header, or nil.
func (l *RequestLine) GroupingKey() *GroupingKey {
	return l.groupingKey
}

// Confirm transitions the line to Open.
// Only draft lines can be confirmed; the caller then hands the line to the
// fulfillment collaborator to generate its transfers.
func (l *RequestLine) Confirm() error {
	if l.status != Draft {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid line status to confirm", l.status.String()),
		)
	}

	l.status = Open
	return nil
}

// Cancel sets the line status to Cancelled.
// Line cancellation is a cascade from the order and carries no guard of its
// own; the order-level state machine decides when the cascade may run.
func (l *RequestLine) Cancel() {
	l.status = Cancelled
}

// ResetToDraft sets the line status back to Draft.
// Like Cancel, this is an unguarded cascade operation.
func (l *RequestLine) ResetToDraft() {
	l.status = Draft
}

// MarkDone sets the line status to Done.
// Invoked by completion forcing and by the external process that fulfills
// lines.
func (l *RequestLine) MarkDone() {
	l.status = Done
}

// applyShared overwrites the header-mirrored attributes with the given
// snapshot.
func (l *RequestLine) applyShared(shared SharedAttributes) {
	l.warehouseID = shared.WarehouseID
	l.locationID = shared.LocationID
	l.companyID = shared.CompanyID
	l.shippingPolicy = shared.ShippingPolicy
	l.expectedDate = shared.ExpectedDate
	l.requestedBy = shared.RequestedBy
	l.groupingKey = shared.GroupingKey
}

func (l *RequestLine) attachTo(orderID kernel.UUID) {
	l.orderID = orderID
}

func (l *RequestLine) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *RequestLine) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.productID = id
	return nil
}

func (l *RequestLine) setUnitID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.unitID = id
	return nil
}

func (l *RequestLine) setQuantity(quantity decimal.Decimal) error {
	if quantity.IsNegative() {
		return ErrQuantityIsNegative
	}
	l.quantity = quantity
	return nil
}

func (l *RequestLine) setRouteID(routeID *kernel.UUID) error {
	if routeID == nil {
		return nil
	}
	if err := routeID.Validate(); err != nil {
		return err
	}
	l.routeID = routeID
	return nil
}
