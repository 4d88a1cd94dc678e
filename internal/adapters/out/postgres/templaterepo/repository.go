package templaterepo

import (
	"context"
	"errors"

	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/core/domain/model/template"
	"stockrequest/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTemplateRepository implements TemplateRepository using GORM.
// Templates are read-mostly reference data; only Add writes.
type GormTemplateRepository struct {
	db *gorm.DB
}

// NewGormTemplateRepository creates a new GORM template repository.
func NewGormTemplateRepository(db *gorm.DB) *GormTemplateRepository {
	return &GormTemplateRepository{db: db}
}

// Add saves a new template with its lines to the database.
func (r *GormTemplateRepository) Add(ctx context.Context, tpl *template.Template) error {
	if err := tpl.Validate(); err != nil {
		return err
	}

	dto := fromDomain(tpl)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a template by ID, lines included.
func (r *GormTemplateRepository) Get(ctx context.Context, id kernel.UUID) (*template.Template, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TemplateDTO
	if err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("template", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every template ordered by name, lines included.
func (r *GormTemplateRepository) GetAll(ctx context.Context) ([]*template.Template, error) {
	var dtos []TemplateDTO
	if err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Order("name").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	templates := make([]*template.Template, 0, len(dtos))
	for _, dto := range dtos {
		tpl, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		templates = append(templates, tpl)
	}

	return templates, nil
}
