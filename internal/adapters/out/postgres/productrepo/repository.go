// Package productrepo provides the read-only product catalog over the
// product_variants table.
package productrepo

import (
	"context"
	"errors"

	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/core/domain/model/product"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VariantDTO represents one product variant row.
type VariantDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	TemplateID uuid.UUID `gorm:"type:uuid;index"`
	Name       string
	UnitID     uuid.UUID `gorm:"type:uuid"`
	Archived   bool
}

// TableName specifies the database table name for product variants.
func (VariantDTO) TableName() string {
	return "product_variants"
}

func toDomain(dto VariantDTO) (*product.Variant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	templateID, err := kernel.UUIDFromBytes(dto.TemplateID[:])
	if err != nil {
		return nil, err
	}
	unitID, err := kernel.UUIDFromBytes(dto.UnitID[:])
	if err != nil {
		return nil, err
	}

	return product.NewVariant(id, templateID, dto.Name, unitID, dto.Archived)
}

// GormProductCatalog implements ProductCatalog using GORM. Lookups that find
// nothing return (nil, nil).
type GormProductCatalog struct {
	db *gorm.DB
}

// NewGormProductCatalog creates a new GORM product catalog.
func NewGormProductCatalog(db *gorm.DB) *GormProductCatalog {
	return &GormProductCatalog{db: db}
}

// GetVariant retrieves a product variant by ID.
func (r *GormProductCatalog) GetVariant(ctx context.Context, id kernel.UUID) (*product.Variant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VariantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveVariantsOfTemplates retrieves the non-archived variants of the
// given product templates, in stable name order.
func (r *GormProductCatalog) GetActiveVariantsOfTemplates(
	ctx context.Context, templateIDs []kernel.UUID,
) ([]*product.Variant, error) {
	ids := make([]uuid.UUID, 0, len(templateIDs))
	for _, id := range templateIDs {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		ids = append(ids, id.Bytes())
	}

	var dtos []VariantDTO
	if err := r.db.WithContext(ctx).
		Order("name, id").
		Find(&dtos, "template_id IN ? AND archived = ?", ids, false).Error; err != nil {
		return nil, err
	}

	variants := make([]*product.Variant, 0, len(dtos))
	for _, dto := range dtos {
		variant, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		variants = append(variants, variant)
	}

	return variants, nil
}
