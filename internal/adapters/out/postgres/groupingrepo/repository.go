// Package groupingrepo implements grouping-key creation over the
// grouping_keys table. One key is created per order at confirmation time
// and shared by every transfer the order generates.
package groupingrepo

import (
	"context"

	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GroupingKeyDTO represents one grouping key row.
type GroupingKeyDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"index"`
}

// TableName specifies the database table name for grouping keys.
func (GroupingKeyDTO) TableName() string {
	return "grouping_keys"
}

// GormGroupingKeyFactory implements GroupingKeyFactory using GORM.
type GormGroupingKeyFactory struct {
	db *gorm.DB
}

// NewGormGroupingKeyFactory creates a new GORM grouping-key factory.
func NewGormGroupingKeyFactory(db *gorm.DB) *GormGroupingKeyFactory {
	return &GormGroupingKeyFactory{db: db}
}

// Create persists a new grouping key carrying the given name and returns it.
func (r *GormGroupingKeyFactory) Create(ctx context.Context, name string) (order.GroupingKey, error) {
	key, err := order.NewGroupingKey(kernel.NewUUID(), name)
	if err != nil {
		return order.GroupingKey{}, err
	}

	dto := GroupingKeyDTO{ID: key.ID().Bytes(), Name: key.Name()}
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return order.GroupingKey{}, err
	}

	return key, nil
}
