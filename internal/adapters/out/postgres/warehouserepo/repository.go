package warehouserepo

import (
	"context"
	"errors"

	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/core/domain/model/warehouse"

	"gorm.io/gorm"
)

// GormWarehouseDirectory implements the warehouse directory using GORM.
// All lookups follow the (nil, nil) convention for missing records; errors
// are reserved for infrastructure failures.
type GormWarehouseDirectory struct {
	db *gorm.DB
}

// NewGormWarehouseDirectory creates a new GORM warehouse directory.
func NewGormWarehouseDirectory(db *gorm.DB) *GormWarehouseDirectory {
	return &GormWarehouseDirectory{db: db}
}

// GetWarehouse retrieves a warehouse by ID.
func (r *GormWarehouseDirectory) GetWarehouse(ctx context.Context, warehouseID kernel.UUID) (*warehouse.Warehouse, error) {
	if err := warehouseID.Validate(); err != nil {
		return nil, err
	}

	var dto WarehouseDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", warehouseID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return warehouseToDomain(dto)
}

// GetWarehouseOwningLocation retrieves the warehouse a stock location
// belongs to, or nil when the location is unknown or not attached to a
// warehouse.
func (r *GormWarehouseDirectory) GetWarehouseOwningLocation(
	ctx context.Context, locationID kernel.UUID,
) (*warehouse.Warehouse, error) {
	if err := locationID.Validate(); err != nil {
		return nil, err
	}

	var location StockLocationDTO
	if err := r.db.WithContext(ctx).First(&location, "id = ?", locationID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if location.WarehouseID == nil {
		return nil, nil
	}

	var dto WarehouseDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", *location.WarehouseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return warehouseToDomain(dto)
}

// GetFirstWarehouseOfCompany retrieves the company's first warehouse in
// stable name order, or nil when the company has none.
func (r *GormWarehouseDirectory) GetFirstWarehouseOfCompany(
	ctx context.Context, companyID kernel.UUID,
) (*warehouse.Warehouse, error) {
	if err := companyID.Validate(); err != nil {
		return nil, err
	}

	var dto WarehouseDTO
	if err := r.db.WithContext(ctx).
		Order("name, id").
		First(&dto, "company_id = ?", companyID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return warehouseToDomain(dto)
}

// GetLocation retrieves a stock location by ID.
func (r *GormWarehouseDirectory) GetLocation(
	ctx context.Context, locationID kernel.UUID,
) (*warehouse.StockLocation, error) {
	if err := locationID.Validate(); err != nil {
		return nil, err
	}

	var dto StockLocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", locationID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return locationToDomain(dto)
}
