package commands

import (
	"context"
	"time"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/stock"
	"mes/internal/core/ports"
)

const orderReferenceType = "manufacturing_order"

// CompleteOrderCommandHandler finishes a manufacturing order.
//
// Completion settles the order's material account in one transaction:
// every still-reserved quantity is allocated and issued from the ledger
// (production_issue), the produced quantity is booked into stock
// (production_receipt) and the reservations are deactivated. A failure
// anywhere rolls the whole settlement back.
type CompleteOrderCommandHandler struct {
	uowFactory MaterialUoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(uowFactory MaterialUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	now := time.Now()
	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Complete(now); err != nil {
		return err
	}

	reservationRepo := uow.ReservationRepository()
	ledgerRepo := uow.LedgerRepository()

	holds, err := reservationRepo.GetActiveByOrder(ctx, aggregate.ID())
	if err != nil {
		return err
	}

	orderID := aggregate.ID()
	for _, hold := range holds {
		remaining := hold.ReservedQuantity()
		if remaining.IsPositive() {
			if err = hold.Allocate(remaining); err != nil {
				return err
			}
			if err = appendEntry(ctx, ledgerRepo, stock.Draft{
				ProductID:     hold.ProductID(),
				Type:          stock.TransactionProductionIssue,
				Quantity:      remaining,
				ReferenceID:   &orderID,
				ReferenceType: orderReferenceType,
				CreatedBy:     cmd.CompletedBy(),
			}, now); err != nil {
				return err
			}
		}

		hold.Release()
		if err = reservationRepo.Update(ctx, hold); err != nil {
			return err
		}
	}

	produced := aggregate.Quantity()
	if cmd.ActualQuantity() != nil {
		if produced, err = kernel.NewQuantity(*cmd.ActualQuantity(), aggregate.Quantity().Unit()); err != nil {
			return err
		}
	}

	// A zero actual quantity books nothing; the run produced no usable goods.
	if produced.IsPositive() {
		if err = appendEntry(ctx, ledgerRepo, stock.Draft{
			ProductID:     aggregate.ProductID(),
			Type:          stock.TransactionProductionReceipt,
			Quantity:      produced,
			ReferenceID:   &orderID,
			ReferenceType: orderReferenceType,
			CreatedBy:     cmd.CompletedBy(),
		}, now); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// appendEntry chains a new ledger entry onto the product's last one. The
// last entry is loaded under a row lock, so concurrent appends for the
// same product serialize on it.
func appendEntry(
	ctx context.Context,
	ledgerRepo ports.LedgerRepository,
	draft stock.Draft,
	occurredAt time.Time,
) error {
	previousBalance := kernel.ZeroQuantity(draft.Quantity.Unit())
	lastEntry, err := ledgerRepo.GetLastEntry(ctx, draft.ProductID)
	if err != nil {
		return err
	}
	if lastEntry != nil {
		previousBalance = lastEntry.RunningBalance()
	}

	entry, err := stock.NextEntry(draft, previousBalance, occurredAt)
	if err != nil {
		return err
	}

	return ledgerRepo.Add(ctx, entry)
}
