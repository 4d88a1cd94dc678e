package commands

import (
	"context"
)

// DraftOrderCommandHandler reverts an order to draft: every line's
// fulfillment state is reset and the header transitions back to Draft.
type DraftOrderCommandHandler struct {
	uowFactory LifecycleUoWFactory
}

// NewDraftOrderCommandHandler creates a handler for the draft reset.
func NewDraftOrderCommandHandler(uowFactory LifecycleUoWFactory) DraftOrderCommandHandler {
	return DraftOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the draft reset command.
func (h DraftOrderCommandHandler) Handle(ctx context.Context, cmd DraftOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	header, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = header.BackToDraft(); err != nil {
		return err
	}

	fulfillment := uow.FulfillmentService()
	for _, line := range header.Lines() {
		if err = fulfillment.ResetLine(ctx, line); err != nil {
			return err
		}
	}

	if err = uow.AuditLog().Record(ctx, header.ID(), header.TakeStatusChanges()); err != nil {
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
