package commands

import (
	"context"
)

// CompleteWorkOrderCommandHandler finishes a routing step.
type CompleteWorkOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteWorkOrderCommandHandler creates a handler for completing work orders.
func NewCompleteWorkOrderCommandHandler(uowFactory OrderUoWFactory) CompleteWorkOrderCommandHandler {
	return CompleteWorkOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
func (h CompleteWorkOrderCommandHandler) Handle(ctx context.Context, cmd CompleteWorkOrderCommand) error {
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

	if err = aggregate.CompleteWorkOrder(cmd.WorkOrderID(), cmd.ActualDuration()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
