package commands

import (
	"context"
)

// CancelOrderCommandHandler cancels an order: every line is withdrawn from
// fulfillment and the header transitions to Cancelled. Done orders cannot be
// cancelled.
type CancelOrderCommandHandler struct {
	uowFactory LifecycleUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory LifecycleUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if err = header.Cancel(); err != nil {
		return err
	}

	fulfillment := uow.FulfillmentService()
	for _, line := range header.Lines() {
		if err = fulfillment.CancelLine(ctx, line); err != nil {
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
