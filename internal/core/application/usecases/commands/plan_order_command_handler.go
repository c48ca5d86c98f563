package commands

import (
	"context"
)

// PlanOrderCommandHandler moves a confirmed order to planned.
type PlanOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPlanOrderCommandHandler creates a handler for order planning.
func NewPlanOrderCommandHandler(uowFactory OrderUoWFactory) PlanOrderCommandHandler {
	return PlanOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the planning command.
func (h PlanOrderCommandHandler) Handle(ctx context.Context, cmd PlanOrderCommand) error {
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

	if err = aggregate.Plan(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
