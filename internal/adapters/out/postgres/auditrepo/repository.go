// Package auditrepo persists the change entries the order aggregate records
// on tracked fields. Entries are append-only.
package auditrepo

import (
	"context"
	"time"

	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditEntryDTO represents one audit trail row.
type AuditEntryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Field     string
	OldValue  string
	NewValue  string
	ChangedAt time.Time
}

// TableName specifies the database table name for audit entries.
func (AuditEntryDTO) TableName() string {
	return "audit_entries"
}

// GormAuditLog implements AuditLog using GORM.
type GormAuditLog struct {
	db *gorm.DB
}

// NewGormAuditLog creates a new GORM audit log.
func NewGormAuditLog(db *gorm.DB) *GormAuditLog {
	return &GormAuditLog{db: db}
}

// Record appends the given change entries for an order. Recording an empty
// set is a no-op.
func (r *GormAuditLog) Record(ctx context.Context, orderID kernel.UUID, changes []order.StatusChange) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if len(changes) == 0 {
		return nil
	}

	dtos := make([]AuditEntryDTO, 0, len(changes))
	for _, change := range changes {
		dtos = append(dtos, AuditEntryDTO{
			ID:        uuid.New(),
			OrderID:   orderID.Bytes(),
			Field:     change.Field,
			OldValue:  change.OldValue,
			NewValue:  change.NewValue,
			ChangedAt: change.ChangedAt,
		})
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}
