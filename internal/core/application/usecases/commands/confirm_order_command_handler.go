package commands

import (
	"context"
)

// ConfirmOrderCommandHandler runs the confirmation workflow: a grouping key
// named after the order is created when the header has none, the header and
// its lines transition to Open, and every line is handed to the fulfillment
// subsystem, all inside one transaction over a row-locked header.
//
// Example:
//
//	handler := NewConfirmOrderCommandHandler(uowFactory)
//	cmd, _ := NewConfirmOrderCommand(orderID)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("confirmation failed: %w", err)
//	}
type ConfirmOrderCommandHandler struct {
	uowFactory LifecycleUoWFactory
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
func NewConfirmOrderCommandHandler(uowFactory LifecycleUoWFactory) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation command.
// Re-confirming an already open order fails with a status transition error;
// the row lock taken by GetForUpdate serializes concurrent confirmations of
// the same header so only one of them creates the grouping key and hands
// lines to fulfillment.
func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
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

	if header.GroupingKey() == nil {
		key, keyErr := uow.GroupingKeyFactory().Create(ctx, header.Name())
		if keyErr != nil {
			return keyErr
		}
		if keyErr = header.AssignGroupingKey(key); keyErr != nil {
			return keyErr
		}
	}

	if err = header.Confirm(); err != nil {
		return err
	}

	fulfillment := uow.FulfillmentService()
	for _, line := range header.Lines() {
		if err = fulfillment.ConfirmLine(ctx, line); err != nil {
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
