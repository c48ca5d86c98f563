package commands

import (
	"context"
)

// CancelWorkOrderCommandHandler abandons a routing step.
type CancelWorkOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelWorkOrderCommandHandler creates a handler for cancelling work orders.
func NewCancelWorkOrderCommandHandler(uowFactory OrderUoWFactory) CancelWorkOrderCommandHandler {
	return CancelWorkOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h CancelWorkOrderCommandHandler) Handle(ctx context.Context, cmd CancelWorkOrderCommand) error {
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
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.CancelWorkOrder(cmd.WorkOrderID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
