// Package templaterepo provides data transfer objects and mapping functions
// for request template persistence.
package templaterepo

import (
	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/core/domain/model/template"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TemplateDTO represents the database structure for persisting templates.
type TemplateDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name    string     `gorm:"uniqueIndex"`
	RouteID *uuid.UUID `gorm:"type:uuid"`
	Lines   []TemplateLineDTO `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for templates.
func (TemplateDTO) TableName() string {
	return "templates"
}

// TemplateLineDTO represents one template line row.
type TemplateLineDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	TemplateID uuid.UUID `gorm:"type:uuid;index"`
	Position   int
	ProductID  uuid.UUID       `gorm:"type:uuid"`
	UnitID     uuid.UUID       `gorm:"type:uuid"`
	Quantity   decimal.Decimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for template lines.
func (TemplateLineDTO) TableName() string {
	return "template_lines"
}

func fromDomain(tpl *template.Template) TemplateDTO {
	var routeID *uuid.UUID
	if id := tpl.RouteID(); id != nil {
		raw := id.Bytes()
		routeID = &raw
	}

	lines := tpl.Lines()
	dto := TemplateDTO{
		ID:      tpl.ID().Bytes(),
		Name:    tpl.Name(),
		RouteID: routeID,
		Lines:   make([]TemplateLineDTO, 0, len(lines)),
	}
	for i, line := range lines {
		dto.Lines = append(dto.Lines, TemplateLineDTO{
			ID:         line.ID().Bytes(),
			TemplateID: dto.ID,
			Position:   i,
			ProductID:  line.ProductID().Bytes(),
			UnitID:     line.UnitID().Bytes(),
			Quantity:   line.Quantity(),
		})
	}

	return dto
}

func toDomain(dto TemplateDTO) (*template.Template, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var routeID *kernel.UUID
	if dto.RouteID != nil {
		rID, routeErr := kernel.UUIDFromBytes((*dto.RouteID)[:])
		if routeErr != nil {
			return nil, routeErr
		}
		routeID = &rID
	}

	lines := make([]*template.TemplateLine, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		lineID, lineErr := kernel.UUIDFromBytes(lineDTO.ID[:])
		if lineErr != nil {
			return nil, lineErr
		}
		productID, lineErr := kernel.UUIDFromBytes(lineDTO.ProductID[:])
		if lineErr != nil {
			return nil, lineErr
		}
		unitID, lineErr := kernel.UUIDFromBytes(lineDTO.UnitID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := template.NewTemplateLine(lineID, productID, unitID, lineDTO.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return template.NewTemplate(id, dto.Name, routeID, lines)
}
