package commands

import (
	"context"
)

// CompleteAllOrderCommandHandler forces every line of an order into Done and
// completes the order, regardless of prior line statuses.
type CompleteAllOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteAllOrderCommandHandler creates a handler for forced completion.
func NewCompleteAllOrderCommandHandler(uowFactory OrderUoWFactory) CompleteAllOrderCommandHandler {
	return CompleteAllOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the forced completion command.
func (h CompleteAllOrderCommandHandler) Handle(ctx context.Context, cmd CompleteAllOrderCommand) error {
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

	header.CompleteAll()

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
