package commands

import (
	"context"

	"stockrequest/internal/core/domain/model/order"
	"stockrequest/internal/core/domain/services"
	"stockrequest/internal/core/ports"
	"stockrequest/internal/pkg/errs"
)

// UpdateOrderAttributesCommandHandler applies header attribute changes
// through the synchronization reactions, so a location change corrects the
// warehouse, a warehouse change corrects location and company, and every
// change cascades onto the request lines.
type UpdateOrderAttributesCommandHandler struct {
	uowFactory OrderUoWFactory
	warehouses ports.WarehouseDirectory
}

// NewUpdateOrderAttributesCommandHandler creates a handler for attribute updates.
func NewUpdateOrderAttributesCommandHandler(
	uowFactory OrderUoWFactory,
	warehouses ports.WarehouseDirectory,
) UpdateOrderAttributesCommandHandler {
	return UpdateOrderAttributesCommandHandler{
		uowFactory: uowFactory,
		warehouses: warehouses,
	}
}

// Handle processes the attribute update command.
// Loads the header under a row lock, applies the changes through the
// synchronizer, validates company consistency against the resulting state
// and persists the aggregate together with its audit entries. Violations
// abort the whole mutation; nothing is partially applied.
func (h UpdateOrderAttributesCommandHandler) Handle(ctx context.Context, cmd UpdateOrderAttributesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	sync, err := services.NewHeaderSynchronizer(h.warehouses)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	header, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.applyChanges(ctx, sync, header, cmd); err != nil {
		return err
	}
	if err = h.validateConsistency(ctx, header); err != nil {
		return err
	}

	if changes := header.TakeStatusChanges(); len(changes) > 0 {
		if err = uow.AuditLog().Record(ctx, header.ID(), changes); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, header); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// applyChanges runs the requested changes through the synchronizer. Company
// goes first and location last, so an explicitly requested location wins
// over the locations the company and warehouse corrections imply.
func (h UpdateOrderAttributesCommandHandler) applyChanges(
	ctx context.Context,
	sync *services.HeaderSynchronizer,
	header *order.OrderHeader,
	cmd UpdateOrderAttributesCommand,
) error {
	if cmd.CompanyID() != nil {
		if err := sync.ChangeCompany(ctx, header, *cmd.CompanyID(), false); err != nil {
			return err
		}
	}
	if cmd.WarehouseID() != nil {
		if err := sync.ChangeWarehouse(ctx, header, *cmd.WarehouseID(), false); err != nil {
			return err
		}
	}
	if cmd.LocationID() != nil {
		if err := sync.ChangeLocation(ctx, header, *cmd.LocationID(), false); err != nil {
			return err
		}
	}
	if cmd.RequestedBy() != nil {
		if err := sync.ChangeRequestedBy(ctx, header, *cmd.RequestedBy(), false); err != nil {
			return err
		}
	}
	if cmd.ExpectedDate() != nil {
		if err := sync.ChangeExpectedDate(ctx, header, *cmd.ExpectedDate(), false); err != nil {
			return err
		}
	}
	if cmd.ShippingPolicy() != nil {
		if err := sync.ChangeShippingPolicy(ctx, header, *cmd.ShippingPolicy(), false); err != nil {
			return err
		}
	}
	if cmd.Name() != nil {
		if err := header.Rename(*cmd.Name()); err != nil {
			return err
		}
	}
	return nil
}

func (h UpdateOrderAttributesCommandHandler) validateConsistency(
	ctx context.Context, header *order.OrderHeader,
) error {
	wh, err := h.warehouses.GetWarehouse(ctx, header.WarehouseID())
	if err != nil {
		return err
	}
	if wh == nil {
		return errs.NewObjectNotFoundError("warehouseID", header.WarehouseID())
	}

	loc, err := h.warehouses.GetLocation(ctx, header.LocationID())
	if err != nil {
		return err
	}
	if loc == nil {
		return errs.NewObjectNotFoundError("locationID", header.LocationID())
	}

	return header.ValidateCompanyConsistency(wh, loc)
}
