package commands

import (
	"context"
	"errors"
	"time"

	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/core/domain/model/order"
	"stockrequest/internal/core/domain/model/product"
	"stockrequest/internal/core/ports"
	"stockrequest/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// CreateOrderFromSelectionCommandHandler builds one order from a product
// selection: templates expand to their non-archived variants, and the order
// gets one zero-quantity line per variant. Defaults resolve the same way as
// plain order creation.
//
// Authorization failures from any collaborator are rewrapped here, once,
// into a user-correctable error with guidance; every other operation lets
// them propagate unmodified.
type CreateOrderFromSelectionCommandHandler struct {
	uowFactory CreateOrderUoWFactory
	session    ports.SessionContext
	warehouses ports.WarehouseDirectory
	catalog    ports.ProductCatalog
}

// NewCreateOrderFromSelectionCommandHandler creates a handler for multi-select creation.
func NewCreateOrderFromSelectionCommandHandler(
	uowFactory CreateOrderUoWFactory,
	session ports.SessionContext,
	warehouses ports.WarehouseDirectory,
	catalog ports.ProductCatalog,
) CreateOrderFromSelectionCommandHandler {
	return CreateOrderFromSelectionCommandHandler{
		uowFactory: uowFactory,
		session:    session,
		warehouses: warehouses,
		catalog:    catalog,
	}
}

// Handle processes the multi-select creation command.
func (h CreateOrderFromSelectionCommandHandler) Handle(
	ctx context.Context, cmd CreateOrderFromSelectionCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := h.create(ctx, cmd)
	if err == nil {
		return nil
	}

	var authErr *errs.AuthorizationError
	if errors.As(err, &authErr) {
		return errs.NewUserErrorWithCause(
			"you do not have the rights to create a stock request from this selection, "+
				"ask your administrator for access to stock requests", err)
	}
	return err
}

func (h CreateOrderFromSelectionCommandHandler) create(
	ctx context.Context, cmd CreateOrderFromSelectionCommand,
) error {
	variants, err := h.resolveVariants(ctx, cmd)
	if err != nil {
		return err
	}

	companyID, err := h.session.CurrentCompany(ctx)
	if err != nil {
		return err
	}
	requestedBy, err := h.session.CurrentUser(ctx)
	if err != nil {
		return err
	}
	wh, err := h.warehouses.GetFirstWarehouseOfCompany(ctx, companyID)
	if err != nil {
		return err
	}
	if wh == nil {
		return errs.NewObjectNotFoundError("companyID", companyID)
	}
	loc, err := h.warehouses.GetLocation(ctx, wh.LotStockLocationID())
	if err != nil {
		return err
	}
	if loc == nil {
		return errs.NewObjectNotFoundError("locationID", wh.LotStockLocationID())
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	name, err := uow.SequenceGenerator().NextName(ctx, ports.SequenceKeyOrder)
	if err != nil {
		return err
	}

	header, err := order.NewOrderHeader(
		cmd.OrderID(), name, requestedBy, wh.ID(), loc.ID(), companyID,
		time.Now().UTC(), order.ReceiveEachWhenAvailable)
	if err != nil {
		return err
	}
	if err = header.ValidateCompanyConsistency(wh, loc); err != nil {
		return err
	}

	for _, variant := range variants {
		line, lineErr := order.NewRequestLine(
			kernel.NewUUID(), variant.ID(), variant.UnitID(), decimal.Zero, nil)
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

func (h CreateOrderFromSelectionCommandHandler) resolveVariants(
	ctx context.Context, cmd CreateOrderFromSelectionCommand,
) ([]*product.Variant, error) {
	if cmd.Kind() == TemplateSelection {
		return h.catalog.GetActiveVariantsOfTemplates(ctx, cmd.ProductIDs())
	}

	variants := make([]*product.Variant, 0, len(cmd.ProductIDs()))
	for _, id := range cmd.ProductIDs() {
		variant, err := h.catalog.GetVariant(ctx, id)
		if err != nil {
			return nil, err
		}
		if variant == nil {
			return nil, errs.NewObjectNotFoundError("productID", id)
		}
		variants = append(variants, variant)
	}
	return variants, nil
}
