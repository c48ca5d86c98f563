package commands

import (
	"context"
)

// ResumeWorkOrderCommandHandler continues a paused routing step.
type ResumeWorkOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewResumeWorkOrderCommandHandler creates a handler for resuming work orders.
func NewResumeWorkOrderCommandHandler(uowFactory OrderUoWFactory) ResumeWorkOrderCommandHandler {
	return ResumeWorkOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the resume command.
func (h ResumeWorkOrderCommandHandler) Handle(ctx context.Context, cmd ResumeWorkOrderCommand) error {
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

	if err = aggregate.ResumeWorkOrder(cmd.WorkOrderID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
