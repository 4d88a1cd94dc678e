// Package warehouse provides read models for the warehouse and stock location
// reference data the stock request core navigates. Warehouses and locations
// are owned by the inventory subsystem; the core only reads them to resolve
// the location/warehouse/company cross-field reactions and to validate
// company consistency.
package warehouse

import (
	"errors"

	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/pkg/errs"

	"stockrequest/internal/pkg/guard"
)

var (
	// ErrWarehouseIsNotConstructed is returned when using an improperly initialized Warehouse.
	ErrWarehouseIsNotConstructed = errors.New("Warehouse must be created via NewWarehouse constructor")
	// ErrStockLocationIsNotConstructed is returned when using an improperly initialized StockLocation.
	ErrStockLocationIsNotConstructed = errors.New("StockLocation must be created via NewStockLocation constructor")
)

// Warehouse is a read model for one warehouse record.
// LotStockLocationID is the warehouse's default stock location, the location
// a header falls back to when its warehouse changes.
type Warehouse struct {
	id                 kernel.UUID
	name               string
	companyID          kernel.UUID
	lotStockLocationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewWarehouse creates a Warehouse read model.
// All identifiers must be valid and the name non-empty.
func NewWarehouse(id kernel.UUID, name string, companyID, lotStockLocationID kernel.UUID) (*Warehouse, error) {
	w := &Warehouse{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setID(id),
		w.setName(name),
		w.setCompanyID(companyID),
		w.setLotStockLocationID(lotStockLocationID),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// Validate ensures the Warehouse was created through NewWarehouse.
func (w *Warehouse) Validate() error {
	if w == nil {
		return ErrWarehouseIsNotConstructed
	}
	return w.guard.Validate(ErrWarehouseIsNotConstructed)
}

// ID returns the warehouse identifier.
func (w *Warehouse) ID() kernel.UUID {
	return w.id
}

// Name returns the warehouse display name.
func (w *Warehouse) Name() string {
	return w.name
}

// CompanyID returns the company owning the warehouse.
func (w *Warehouse) CompanyID() kernel.UUID {
	return w.companyID
}

// LotStockLocationID returns the warehouse's default stock location.
func (w *Warehouse) LotStockLocationID() kernel.UUID {
	return w.lotStockLocationID
}

func (w *Warehouse) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Warehouse) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	w.name = name
	return nil
}

func (w *Warehouse) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}
	w.companyID = companyID
	return nil
}

func (w *Warehouse) setLotStockLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}
	w.lotStockLocationID = locationID
	return nil
}

// StockLocation is a read model for one stock location record.
// CompanyID may be nil: shared locations carry no owning company and then
// impose no company constraint on the headers that use them.
type StockLocation struct {
	id        kernel.UUID
	name      string
	companyID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewStockLocation creates a StockLocation read model.
func NewStockLocation(id kernel.UUID, name string, companyID *kernel.UUID) (*StockLocation, error) {
	l := &StockLocation{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setID(id),
		l.setName(name),
		l.setCompanyID(companyID),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// Validate ensures the StockLocation was created through NewStockLocation.
func (l *StockLocation) Validate() error {
	if l == nil {
		return ErrStockLocationIsNotConstructed
	}
	return l.guard.Validate(ErrStockLocationIsNotConstructed)
}

// ID returns the location identifier.
func (l *StockLocation) ID() kernel.UUID {
	return l.id
}

// Name returns the location display name.
func (l *StockLocation) Name() string {
	return l.name
}

// CompanyID returns the company owning the location, or nil for shared
// locations.
func (l *StockLocation) CompanyID() *kernel.UUID {
	return l.companyID
}

func (l *StockLocation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *StockLocation) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	l.name = name
	return nil
}

func (l *StockLocation) setCompanyID(companyID *kernel.UUID) error {
	if companyID == nil {
		return nil
	}
	if err := companyID.Validate(); err != nil {
		return err
	}
	l.companyID = companyID
	return nil
}
