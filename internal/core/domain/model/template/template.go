package template

import (
	"errors"

	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/pkg/errs"
	"stockrequest/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrTemplateIsNotConstructed is returned when using an improperly initialized Template.
	ErrTemplateIsNotConstructed = errors.New("Template must be created via NewTemplate constructor")
	// ErrTemplateLineIsNotConstructed is returned when using an improperly initialized TemplateLine.
	ErrTemplateLineIsNotConstructed = errors.New("TemplateLine must be created via NewTemplateLine constructor")
	// ErrQuantityIsNegative is returned when a template line carries a negative quantity.
	ErrQuantityIsNegative = errors.New("quantity must not be negative")
)

// Template is a named list of line defaults used to seed a new order's lines
// in bulk. Applying a template is a one-shot expansion; no live link to the
// template survives beyond the optional reference kept on the order header.
type Template struct {
	id      kernel.UUID
	name    string
	routeID *kernel.UUID
	lines   []*TemplateLine

	guard guard.ConstructorGuard
}

// NewTemplate creates a template with the given lines. The optional route is
// the default route new request lines take when the template is applied.
func NewTemplate(id kernel.UUID, name string, routeID *kernel.UUID, lines []*TemplateLine) (*Template, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if routeID != nil {
		if err := routeID.Validate(); err != nil {
			return nil, err
		}
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
	}

	return &Template{
		id:      id,
		name:    name,
		routeID: routeID,
		lines:   lines,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Template was created through NewTemplate.
func (t *Template) Validate() error {
	if t == nil {
		return ErrTemplateIsNotConstructed
	}
	return t.guard.Validate(ErrTemplateIsNotConstructed)
}

// ID returns the template identifier.
func (t *Template) ID() kernel.UUID {
	return t.id
}

// Name returns the template name.
func (t *Template) Name() string {
	return t.name
}

// RouteID returns the default route for lines seeded from this template, or
// nil when the template carries none.
func (t *Template) RouteID() *kernel.UUID {
	return t.routeID
}

// Lines returns the template lines in order.
func (t *Template) Lines() []*TemplateLine {
	return t.lines
}

// IsEqual compares two templates by their unique identifiers.
func (t *Template) IsEqual(other *Template) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// TemplateLine holds the (product, unit, quantity) defaults one request line
// copies verbatim at expansion time.
type TemplateLine struct {
	id        kernel.UUID
	productID kernel.UUID
	unitID    kernel.UUID
	quantity  decimal.Decimal

	guard guard.ConstructorGuard
}

// NewTemplateLine creates a template line.
func NewTemplateLine(id, productID, unitID kernel.UUID, quantity decimal.Decimal) (*TemplateLine, error) {
	if err := errors.Join(
		id.Validate(),
		productID.Validate(),
		unitID.Validate(),
	); err != nil {
		return nil, err
	}
	if quantity.IsNegative() {
		return nil, ErrQuantityIsNegative
	}

	return &TemplateLine{
		id:        id,
		productID: productID,
		unitID:    unitID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the TemplateLine was created through NewTemplateLine.
func (l *TemplateLine) Validate() error {
	if l == nil {
		return ErrTemplateLineIsNotConstructed
	}
	return l.guard.Validate(ErrTemplateLineIsNotConstructed)
}

// ID returns the template line identifier.
func (l *TemplateLine) ID() kernel.UUID {
	return l.id
}

// ProductID returns the product variant to request.
func (l *TemplateLine) ProductID() kernel.UUID {
	return l.productID
}

// UnitID returns the unit of measure.
func (l *TemplateLine) UnitID() kernel.UUID {
	return l.unitID
}

// Quantity returns the default quantity.
func (l *TemplateLine) Quantity() decimal.Decimal {
	return l.quantity
}
