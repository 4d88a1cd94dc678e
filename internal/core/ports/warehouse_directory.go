package ports

import (
	"context"

	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/core/domain/model/warehouse"
)

// WarehouseDirectory is the read-only view of the warehouse and location
// hierarchy. Lookups run with elevated privileges: the acting user creating
// a stock request may lack direct read access to warehouse records, yet the
// synchronization reactions still need to resolve them.
//
// Lookups that find nothing return (nil, nil); errors are reserved for
// infrastructure failures.
type WarehouseDirectory interface {
	// GetWarehouse retrieves a warehouse by its identifier.
	GetWarehouse(ctx context.Context, warehouseID kernel.UUID) (*warehouse.Warehouse, error)

	// GetWarehouseOwningLocation resolves the warehouse whose location
	// subtree contains the given location.
	GetWarehouseOwningLocation(ctx context.Context, locationID kernel.UUID) (*warehouse.Warehouse, error)

	// GetFirstWarehouseOfCompany retrieves the first warehouse belonging to
	// the company, by stable search order.
	GetFirstWarehouseOfCompany(ctx context.Context, companyID kernel.UUID) (*warehouse.Warehouse, error)

	// GetLocation retrieves a stock location by its identifier.
	GetLocation(ctx context.Context, locationID kernel.UUID) (*warehouse.StockLocation, error)
}
