package commands

import (
	"context"
)

// ResumeOrderCommandHandler continues a paused order.
type ResumeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewResumeOrderCommandHandler creates a handler for resuming production.
func NewResumeOrderCommandHandler(uowFactory OrderUoWFactory) ResumeOrderCommandHandler {
	return ResumeOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the resume command.
func (h ResumeOrderCommandHandler) Handle(ctx context.Context, cmd ResumeOrderCommand) error {
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

	if err = aggregate.Resume(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
