package commands

import (
	"context"
)

// PauseWorkOrderCommandHandler halts a running routing step.
type PauseWorkOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPauseWorkOrderCommandHandler creates a handler for pausing work orders.
func NewPauseWorkOrderCommandHandler(uowFactory OrderUoWFactory) PauseWorkOrderCommandHandler {
	return PauseWorkOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pause command.
func (h PauseWorkOrderCommandHandler) Handle(ctx context.Context, cmd PauseWorkOrderCommand) error {
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

	if err = aggregate.PauseWorkOrder(cmd.WorkOrderID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
