// Package product provides read models for the product catalog records the
// stock request core consumes. Products are owned by the catalog subsystem;
// the core reads variants to seed request lines and to expand product
// templates during multi-select bulk creation.
package product

import (
	"errors"

	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/pkg/errs"
	"stockrequest/internal/pkg/guard"
)

// ErrVariantIsNotConstructed is returned when using an improperly initialized Variant.
var ErrVariantIsNotConstructed = errors.New("Variant must be created via NewVariant constructor")

// Variant is a read model for one sellable product variant.
// TemplateID links the variant to its product template (the catalog master
// record, distinct from the stock request templates in the template package).
type Variant struct {
	id         kernel.UUID
	templateID kernel.UUID
	name       string
	unitID     kernel.UUID
	archived   bool

	guard guard.ConstructorGuard
}

// NewVariant creates a Variant read model.
func NewVariant(id, templateID kernel.UUID, name string, unitID kernel.UUID, archived bool) (*Variant, error) {
	v := &Variant{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setTemplateID(templateID),
		v.setName(name),
		v.setUnitID(unitID),
	); err != nil {
		return nil, err
	}
	v.archived = archived

	return v, nil
}

// Validate ensures the Variant was created through NewVariant.
func (v *Variant) Validate() error {
	if v == nil {
		return ErrVariantIsNotConstructed
	}
	return v.guard.Validate(ErrVariantIsNotConstructed)
}

// ID returns the variant identifier.
func (v *Variant) ID() kernel.UUID {
	return v.id
}

// TemplateID returns the catalog template the variant belongs to.
func (v *Variant) TemplateID() kernel.UUID {
	return v.templateID
}

// Name returns the variant display name.
func (v *Variant) Name() string {
	return v.name
}

// UnitID returns the variant's default unit of measure.
func (v *Variant) UnitID() kernel.UUID {
	return v.unitID
}

// Archived reports whether the variant has been archived in the catalog.
func (v *Variant) Archived() bool {
	return v.archived
}

func (v *Variant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Variant) setTemplateID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.templateID = id
	return nil
}

func (v *Variant) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	v.name = name
	return nil
}

func (v *Variant) setUnitID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.unitID = id
	return nil
}
