// Package sequencerepo implements named name sequences over a row-locked
// counter table. Order names like "SR00042" are drawn here when an order is
// created without an explicit name.
package sequencerepo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	defaultPrefix  = "SR"
	defaultPadding = 5
)

// SequenceDTO represents one named sequence row.
type SequenceDTO struct {
	Key     string `gorm:"primaryKey"`
	Prefix  string
	Padding int
	Counter int64
}

// TableName specifies the database table name for sequences.
func (SequenceDTO) TableName() string {
	return "sequences"
}

// GormSequenceGenerator implements SequenceGenerator using GORM. NextName
// increments the counter under a row lock, so two orders created
// concurrently never draw the same name.
type GormSequenceGenerator struct {
	db *gorm.DB
}

// NewGormSequenceGenerator creates a new GORM sequence generator.
func NewGormSequenceGenerator(db *gorm.DB) *GormSequenceGenerator {
	return &GormSequenceGenerator{db: db}
}

// NextName draws the next name from the sequence identified by sequenceKey.
// Unknown keys start a fresh sequence with the default prefix.
func (r *GormSequenceGenerator) NextName(ctx context.Context, sequenceKey string) (string, error) {
	if sequenceKey == "" {
		return "", errors.New("sequence key is required")
	}

	var dto SequenceDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "key = ?", sequenceKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		dto = SequenceDTO{Key: sequenceKey, Prefix: defaultPrefix, Padding: defaultPadding}
		if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
			return "", err
		}
	} else if err != nil {
		return "", err
	}

	dto.Counter++
	result := r.db.WithContext(ctx).Model(&SequenceDTO{}).
		Where("key = ?", dto.Key).
		Update("counter", dto.Counter)
	if result.Error != nil {
		return "", result.Error
	}

	return fmt.Sprintf("%s%0*d", dto.Prefix, dto.Padding, dto.Counter), nil
}
