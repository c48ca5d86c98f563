package commands

import (
	"context"
)

// PauseOrderCommandHandler halts a running order.
type PauseOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPauseOrderCommandHandler creates a handler for pausing production.
func NewPauseOrderCommandHandler(uowFactory OrderUoWFactory) PauseOrderCommandHandler {
	return PauseOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pause command.
func (h PauseOrderCommandHandler) Handle(ctx context.Context, cmd PauseOrderCommand) error {
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

	if err = aggregate.Pause(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
