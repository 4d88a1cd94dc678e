package commands

import (
	"context"
	"time"

	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/core/domain/model/order"
	"stockrequest/internal/core/domain/model/warehouse"
	"stockrequest/internal/core/ports"
	"stockrequest/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves defaults from the acting session and the warehouse directory,
// assigns the name from the sequence when the sentinel is given, and
// persists the new draft order with its lines.
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
	session    ports.SessionContext
	warehouses ports.WarehouseDirectory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory CreateOrderUoWFactory,
	session ports.SessionContext,
	warehouses ports.WarehouseDirectory,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		session:    session,
		warehouses: warehouses,
	}
}

// Handle processes the order creation command.
// Default resolution order: company from the session, requester from the
// acting user, warehouse as the company's first warehouse, location as the
// warehouse default stock location, expected date now. Company consistency
// is validated before anything is persisted.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	companyID, err := h.resolveCompany(ctx, cmd)
	if err != nil {
		return err
	}
	requestedBy, err := h.resolveRequester(ctx, cmd)
	if err != nil {
		return err
	}
	wh, err := h.resolveWarehouse(ctx, cmd, companyID)
	if err != nil {
		return err
	}
	loc, err := h.resolveLocation(ctx, cmd, wh)
	if err != nil {
		return err
	}

	expectedDate := time.Now().UTC()
	if cmd.ExpectedDate() != nil {
		expectedDate = *cmd.ExpectedDate()
	}
	policy := cmd.ShippingPolicy()
	if policy == order.UnknownPolicy {
		policy = order.ReceiveEachWhenAvailable
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	name := cmd.Name()
	if name == "" || name == NameSentinel {
		name, err = uow.SequenceGenerator().NextName(ctx, ports.SequenceKeyOrder)
		if err != nil {
			return err
		}
	}

	header, err := order.NewOrderHeader(
		cmd.OrderID(), name, requestedBy, wh.ID(), loc.ID(), companyID, expectedDate, policy)
	if err != nil {
		return err
	}
	if err = header.ValidateCompanyConsistency(wh, loc); err != nil {
		return err
	}

	for _, input := range cmd.Lines() {
		line, lineErr := order.NewRequestLine(
			kernel.NewUUID(), input.ProductID(), input.UnitID(), input.Quantity(), input.RouteID())
		if lineErr != nil {
			return lineErr
		}
		if lineErr = header.AddLine(line); lineErr != nil {
			return lineErr
		}
	}

	if err = uow.OrderRepository().Add(ctx, header); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h CreateOrderCommandHandler) resolveCompany(ctx context.Context, cmd CreateOrderCommand) (kernel.UUID, error) {
	if cmd.CompanyID() != nil {
		return *cmd.CompanyID(), nil
	}
	return h.session.CurrentCompany(ctx)
}

func (h CreateOrderCommandHandler) resolveRequester(ctx context.Context, cmd CreateOrderCommand) (kernel.UUID, error) {
	if cmd.RequestedBy() != nil {
		return *cmd.RequestedBy(), nil
	}
	return h.session.CurrentUser(ctx)
}

func (h CreateOrderCommandHandler) resolveWarehouse(
	ctx context.Context, cmd CreateOrderCommand, companyID kernel.UUID,
) (*warehouse.Warehouse, error) {
	if cmd.WarehouseID() != nil {
		wh, err := h.warehouses.GetWarehouse(ctx, *cmd.WarehouseID())
		if err != nil {
			return nil, err
		}
		if wh == nil {
			return nil, errs.NewObjectNotFoundError("warehouseID", *cmd.WarehouseID())
		}
		return wh, nil
	}

	wh, err := h.warehouses.GetFirstWarehouseOfCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, errs.NewObjectNotFoundError("companyID", companyID)
	}
	return wh, nil
}

func (h CreateOrderCommandHandler) resolveLocation(
	ctx context.Context, cmd CreateOrderCommand, wh *warehouse.Warehouse,
) (*warehouse.StockLocation, error) {
	locationID := wh.LotStockLocationID()
	if cmd.LocationID() != nil {
		locationID = *cmd.LocationID()
	}

	loc, err := h.warehouses.GetLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, errs.NewObjectNotFoundError("locationID", locationID)
	}
	return loc, nil
}
