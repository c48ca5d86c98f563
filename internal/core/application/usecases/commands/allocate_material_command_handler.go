package commands

import (
	"context"
	"time"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/order"
	"mes/internal/core/domain/model/reservation"
	"mes/internal/core/domain/model/stock"
	"mes/internal/pkg/errs"
)

// AllocateMaterialCommandHandler consumes reserved material during
// production. The allocated quantity leaves the stock ledger as a
// production_issue entry; the hold shrinks by the same amount. Both
// writes happen in one transaction.
type AllocateMaterialCommandHandler struct {
	uowFactory MaterialUoWFactory
}

// NewAllocateMaterialCommandHandler creates a handler for material allocation.
func NewAllocateMaterialCommandHandler(uowFactory MaterialUoWFactory) AllocateMaterialCommandHandler {
	return AllocateMaterialCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the allocation command.
// Fails with BusinessRuleViolationError when the order is not running,
// with EntityNotFoundError when the order holds no active reservation for
// the product, and with ValidationError when the quantity exceeds the
// remaining hold.
func (h AllocateMaterialCommandHandler) Handle(ctx context.Context, cmd AllocateMaterialCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if aggregate.Status() != order.StatusInProgress && aggregate.Status() != order.StatusPaused {
		return errs.NewBusinessRuleViolationError("material is allocated only while the order runs")
	}

	reservationRepo := uow.ReservationRepository()
	holds, err := reservationRepo.GetActiveByOrder(ctx, aggregate.ID())
	if err != nil {
		return err
	}

	var hold *reservation.MaterialReservation
	for _, r := range holds {
		if r.ProductID().IsEqual(cmd.ProductID()) {
			hold = r
			break
		}
	}
	if hold == nil {
		return errs.NewEntityNotFoundError("material reservation", cmd.ProductID().String())
	}

	quantity, err := kernel.NewQuantity(cmd.Quantity(), hold.ReservedQuantity().Unit())
	if err != nil {
		return err
	}

	if err = hold.Allocate(quantity); err != nil {
		return err
	}

	orderID := aggregate.ID()
	if err = appendEntry(ctx, uow.LedgerRepository(), stock.Draft{
		ProductID:     hold.ProductID(),
		Type:          stock.TransactionProductionIssue,
		Quantity:      quantity,
		ReferenceID:   &orderID,
		ReferenceType: orderReferenceType,
		CreatedBy:     cmd.AllocatedBy(),
	}, time.Now()); err != nil {
		return err
	}

	if err = reservationRepo.Update(ctx, hold); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
