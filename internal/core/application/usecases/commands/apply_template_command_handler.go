package commands

import (
	"context"

	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/core/domain/model/order"
)

// ApplyTemplateCommandHandler expands a template into an order. The order's
// existing lines are hard-deleted and one new line is created per template
// line, copying product, unit and quantity verbatim and taking the header's
// current shared attributes and status. The route defaults from the
// template. A one-shot expansion; no live link to the template remains
// beyond the reference kept on the header.
type ApplyTemplateCommandHandler struct {
	uowFactory TemplateUoWFactory
}

// NewApplyTemplateCommandHandler creates a handler for template expansion.
func NewApplyTemplateCommandHandler(uowFactory TemplateUoWFactory) ApplyTemplateCommandHandler {
	return ApplyTemplateCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the expansion command.
func (h ApplyTemplateCommandHandler) Handle(ctx context.Context, cmd ApplyTemplateCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tpl, err := uow.TemplateRepository().Get(ctx, cmd.TemplateID())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	header, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	lines := make([]*order.RequestLine, 0, len(tpl.Lines()))
	for _, tplLine := range tpl.Lines() {
		line, lineErr := order.NewRequestLine(
			kernel.NewUUID(), tplLine.ProductID(), tplLine.UnitID(), tplLine.Quantity(), tpl.RouteID())
		if lineErr != nil {
			return lineErr
		}
		lines = append(lines, line)
	}

	if err = header.ReplaceLines(lines); err != nil {
		return err
	}
	templateID := cmd.TemplateID()
	if err = header.SetTemplateID(&templateID); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, header); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
