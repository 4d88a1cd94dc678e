package commands

import (
	"context"
)

// CheckOrderCompletionCommandHandler runs the completion probe over one
// order. When every line is done (or the order has no lines at all) the
// order transitions to Done; otherwise the probe is a no-op and nothing is
// persisted.
type CheckOrderCompletionCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCheckOrderCompletionCommandHandler creates a handler for the completion probe.
func NewCheckOrderCompletionCommandHandler(uowFactory OrderUoWFactory) CheckOrderCompletionCommandHandler {
	return CheckOrderCompletionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the probe command.
func (h CheckOrderCompletionCommandHandler) Handle(ctx context.Context, cmd CheckOrderCompletionCommand) error {
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

	if !header.CheckCompletion() {
		return uow.Commit(ctx)
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
