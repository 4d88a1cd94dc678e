// Package warehouserepo provides the read-only warehouse directory over the
// warehouses and stock_locations tables. The synchronization reactions and
// the order creation defaults resolve against it.
package warehouserepo

import (
	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/core/domain/model/warehouse"

	"github.com/google/uuid"
)

// WarehouseDTO represents one warehouse row.
type WarehouseDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name               string
	CompanyID          uuid.UUID `gorm:"type:uuid;index"`
	LotStockLocationID uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for warehouses.
func (WarehouseDTO) TableName() string {
	return "warehouses"
}

// StockLocationDTO represents one stock location row. CompanyID is null for
// locations shared across companies.
type StockLocationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	CompanyID   *uuid.UUID `gorm:"type:uuid"`
	WarehouseID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for stock locations.
func (StockLocationDTO) TableName() string {
	return "stock_locations"
}

func warehouseToDomain(dto WarehouseDTO) (*warehouse.Warehouse, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}
	lotStockLocationID, err := kernel.UUIDFromBytes(dto.LotStockLocationID[:])
	if err != nil {
		return nil, err
	}

	return warehouse.NewWarehouse(id, dto.Name, companyID, lotStockLocationID)
}

func locationToDomain(dto StockLocationDTO) (*warehouse.StockLocation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var companyID *kernel.UUID
	if dto.CompanyID != nil {
		cID, companyErr := kernel.UUIDFromBytes((*dto.CompanyID)[:])
		if companyErr != nil {
			return nil, companyErr
		}
		companyID = &cID
	}

	return warehouse.NewStockLocation(id, dto.Name, companyID)
}
