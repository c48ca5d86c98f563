package commands

import (
	"context"
)

// CancelOrderCommandHandler abandons an order and releases its material
// holds. No ledger entries are written: quantities already allocated have
// been consumed and stay consumed, the rest simply becomes available
// again.
type CancelOrderCommandHandler struct {
	uowFactory CancelOrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory CancelOrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if err = aggregate.Cancel(cmd.Reason()); err != nil {
		return err
	}

	reservationRepo := uow.ReservationRepository()
	holds, err := reservationRepo.GetActiveByOrder(ctx, aggregate.ID())
	if err != nil {
		return err
	}

	for _, hold := range holds {
		hold.Release()
		if err = reservationRepo.Update(ctx, hold); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
