package commands

import (
	"context"
)

// StartWorkOrderCommandHandler starts a routing step through its owning
// order, which enforces the dependency guard.
type StartWorkOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartWorkOrderCommandHandler creates a handler for starting work orders.
func NewStartWorkOrderCommandHandler(uowFactory OrderUoWFactory) StartWorkOrderCommandHandler {
	return StartWorkOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start command.
func (h StartWorkOrderCommandHandler) Handle(ctx context.Context, cmd StartWorkOrderCommand) error {
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

	if err = aggregate.StartWorkOrder(cmd.WorkOrderID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
