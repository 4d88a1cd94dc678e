package services

import (
	"context"
	"time"

	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/core/domain/model/order"
	"stockrequest/internal/core/domain/model/warehouse"
	"stockrequest/internal/pkg/errs"
)

// WarehouseDirectory is the read-only view of the warehouse hierarchy the
// synchronizer corrects header fields against. Lookups run with elevated
// privileges because the acting user may lack read access to warehouse
// records.
//
// Lookups that find nothing return (nil, nil); errors are reserved for
// infrastructure failures.
type WarehouseDirectory interface {
	GetWarehouse(ctx context.Context, warehouseID kernel.UUID) (*warehouse.Warehouse, error)
	GetWarehouseOwningLocation(ctx context.Context, locationID kernel.UUID) (*warehouse.Warehouse, error)
	GetFirstWarehouseOfCompany(ctx context.Context, companyID kernel.UUID) (*warehouse.Warehouse, error)
}

// HeaderSynchronizer is a domain service keeping the header-mirrored
// attributes of every request line equal to the header's current values,
// while letting focused changes to location, warehouse or company trigger
// corrective changes to the other two without infinite recursion.
//
// Cross-field reactions:
//   - a location change re-resolves the warehouse owning that location
//   - a warehouse change re-resolves the location (warehouse default stock
//     location) and the company (warehouse owner)
//   - a company change re-resolves the warehouse (first warehouse of the
//     company, stable order)
//
// Each public Change method applies its field write, runs the corrective
// reaction, and finishes by pushing the header snapshot onto every line.
// Corrective hops re-enter sibling reactions exactly once, with further
// hops disabled, so a single logical update converges in at most three
// corrective hops. The suppressCascade argument skips the final push onto
// the lines, nothing else; callers composing several changes into one
// logical update suppress all but the last.
type HeaderSynchronizer struct {
	warehouses WarehouseDirectory
}

// NewHeaderSynchronizer creates a HeaderSynchronizer over the given
// warehouse directory.
func NewHeaderSynchronizer(warehouses WarehouseDirectory) (*HeaderSynchronizer, error) {
	if warehouses == nil {
		return nil, errs.NewValueIsRequiredError("warehouses")
	}

	return &HeaderSynchronizer{warehouses: warehouses}, nil
}

// ChangeLocation points the header at another destination location, corrects
// the warehouse to the one owning that location, and propagates.
func (s *HeaderSynchronizer) ChangeLocation(
	ctx context.Context, header *order.OrderHeader, locationID kernel.UUID, suppressCascade bool,
) error {
	if err := header.Validate(); err != nil {
		return err
	}
	if err := header.SetLocationID(locationID); err != nil {
		return err
	}
	if err := s.reactToLocation(ctx, header, true); err != nil {
		return err
	}

	s.finish(header, suppressCascade)
	return nil
}

// ChangeWarehouse points the header at another warehouse, corrects the
// location and the company when they no longer match, and propagates.
func (s *HeaderSynchronizer) ChangeWarehouse(
	ctx context.Context, header *order.OrderHeader, warehouseID kernel.UUID, suppressCascade bool,
) error {
	if err := header.Validate(); err != nil {
		return err
	}
	if err := header.SetWarehouseID(warehouseID); err != nil {
		return err
	}

	wh, err := s.warehouses.GetWarehouse(ctx, warehouseID)
	if err != nil {
		return err
	}
	if wh == nil {
		return errs.NewObjectNotFoundError("warehouseID", warehouseID)
	}
	if err = s.reactToWarehouse(ctx, header, wh, true); err != nil {
		return err
	}

	s.finish(header, suppressCascade)
	return nil
}

// ChangeCompany moves the header to another company, corrects the warehouse
// to the first warehouse of that company when the current one belongs
// elsewhere, and propagates.
func (s *HeaderSynchronizer) ChangeCompany(
	ctx context.Context, header *order.OrderHeader, companyID kernel.UUID, suppressCascade bool,
) error {
	if err := header.Validate(); err != nil {
		return err
	}
	if err := header.SetCompanyID(companyID); err != nil {
		return err
	}
	if err := s.reactToCompany(ctx, header, true); err != nil {
		return err
	}

	s.finish(header, suppressCascade)
	return nil
}

// ChangeRequestedBy changes the requesting user and propagates. No
// corrective reaction.
func (s *HeaderSynchronizer) ChangeRequestedBy(
	_ context.Context, header *order.OrderHeader, requestedBy kernel.UUID, suppressCascade bool,
) error {
	if err := header.Validate(); err != nil {
		return err
	}
	if err := header.SetRequestedBy(requestedBy); err != nil {
		return err
	}

	s.finish(header, suppressCascade)
	return nil
}

// ChangeExpectedDate changes the expected arrival date and propagates. No
// corrective reaction.
func (s *HeaderSynchronizer) ChangeExpectedDate(
	_ context.Context, header *order.OrderHeader, expectedDate time.Time, suppressCascade bool,
) error {
	if err := header.Validate(); err != nil {
		return err
	}
	if err := header.SetExpectedDate(expectedDate); err != nil {
		return err
	}

	s.finish(header, suppressCascade)
	return nil
}

// ChangeShippingPolicy changes the shipping policy and propagates. No
// corrective reaction.
func (s *HeaderSynchronizer) ChangeShippingPolicy(
	_ context.Context, header *order.OrderHeader, policy order.ShippingPolicy, suppressCascade bool,
) error {
	if err := header.Validate(); err != nil {
		return err
	}
	if err := header.SetShippingPolicy(policy); err != nil {
		return err
	}

	s.finish(header, suppressCascade)
	return nil
}

// ChangeGroupingKey attaches a grouping key and propagates. No corrective
// reaction.
func (s *HeaderSynchronizer) ChangeGroupingKey(
	_ context.Context, header *order.OrderHeader, key order.GroupingKey, suppressCascade bool,
) error {
	if err := header.Validate(); err != nil {
		return err
	}
	if err := header.AssignGroupingKey(key); err != nil {
		return err
	}

	s.finish(header, suppressCascade)
	return nil
}

// reactToLocation resolves the warehouse owning the header's location and,
// when it differs from the current warehouse, corrects the warehouse. With
// hop set the warehouse reaction is re-run once with further hops disabled.
func (s *HeaderSynchronizer) reactToLocation(ctx context.Context, header *order.OrderHeader, hop bool) error {
	implied, err := s.warehouses.GetWarehouseOwningLocation(ctx, header.LocationID())
	if err != nil {
		return err
	}
	if implied == nil || implied.ID().IsEqual(header.WarehouseID()) {
		return nil
	}

	if err = header.SetWarehouseID(implied.ID()); err != nil {
		return err
	}
	if hop {
		return s.reactToWarehouse(ctx, header, implied, false)
	}
	return nil
}

// reactToWarehouse corrects the header's location to the warehouse default
// stock location when the current location is not owned by the warehouse,
// and the header's company to the warehouse owner when they differ.
func (s *HeaderSynchronizer) reactToWarehouse(
	ctx context.Context, header *order.OrderHeader, wh *warehouse.Warehouse, hop bool,
) error {
	implied, err := s.warehouses.GetWarehouseOwningLocation(ctx, header.LocationID())
	if err != nil {
		return err
	}
	if implied == nil || !implied.ID().IsEqual(wh.ID()) {
		if err = header.SetLocationID(wh.LotStockLocationID()); err != nil {
			return err
		}
		if hop {
			if err = s.reactToLocation(ctx, header, false); err != nil {
				return err
			}
		}
	}

	if !wh.CompanyID().IsEqual(header.CompanyID()) {
		if err = header.SetCompanyID(wh.CompanyID()); err != nil {
			return err
		}
		if hop {
			return s.reactToCompany(ctx, header, false)
		}
	}
	return nil
}

// reactToCompany corrects the header's warehouse to the first warehouse of
// the new company when the current warehouse belongs to another company.
func (s *HeaderSynchronizer) reactToCompany(ctx context.Context, header *order.OrderHeader, hop bool) error {
	current, err := s.warehouses.GetWarehouse(ctx, header.WarehouseID())
	if err != nil {
		return err
	}
	if current != nil && current.CompanyID().IsEqual(header.CompanyID()) {
		return nil
	}

	first, err := s.warehouses.GetFirstWarehouseOfCompany(ctx, header.CompanyID())
	if err != nil {
		return err
	}
	if first == nil {
		return nil
	}

	if err = header.SetWarehouseID(first.ID()); err != nil {
		return err
	}
	if hop {
		return s.reactToWarehouse(ctx, header, first, false)
	}
	return nil
}

func (s *HeaderSynchronizer) finish(header *order.OrderHeader, suppressCascade bool) {
	if suppressCascade {
		return
	}
	header.PropagateToLines()
}
