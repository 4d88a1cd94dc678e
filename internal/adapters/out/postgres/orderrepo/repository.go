package orderrepo

import (
	"context"
	"errors"

	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/core/domain/model/order"
	"stockrequest/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order header with its lines to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.OrderHeader) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order header to the database. The stored line
// set is replaced wholesale with the aggregate's current one, so removed
// and rewritten lines disappear from storage.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.OrderHeader) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	lines := dto.Lines
	dto.Lines = nil

	result := r.db.WithContext(ctx).Model(&OrderHeaderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).
		Delete(&RequestLineDTO{}).Error; err != nil {
		return err
	}
	if len(lines) > 0 {
		if err := r.db.WithContext(ctx).Create(&lines).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order header by ID, lines included.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.OrderHeader, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves an order header by ID and takes a row lock on the
// header for the rest of the transaction.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.OrderHeader, error) {
	return r.get(ctx, id, true)
}

func (r *GormOrderRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*order.OrderHeader, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	if forUpdate {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto OrderHeaderDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Order("position").
		Find(&dto.Lines, "order_id = ?", dto.ID).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInOpenStatus retrieves all order headers in Open status, lines
// included. Used by the completion sweep.
func (r *GormOrderRepository) GetAllInOpenStatus(ctx context.Context) ([]*order.OrderHeader, error) {
	var dtos []OrderHeaderDTO
	if err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Find(&dtos, "status = ?", order.Open).Error; err != nil {
		return nil, err
	}

	headers := make([]*order.OrderHeader, 0, len(dtos))
	for _, dto := range dtos {
		header, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		headers = append(headers, header)
	}

	return headers, nil
}

// Delete removes an order header and its lines.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).
		Where("order_id = ?", id.Bytes()).
		Delete(&RequestLineDTO{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderHeaderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}
