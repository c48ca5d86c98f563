package commands

import (
	"context"
	"sort"
	"time"

	"mes/internal/core/domain/model/bom"
	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/order"
	"mes/internal/core/domain/model/reservation"
	"mes/internal/core/domain/services"
	"mes/internal/core/ports"
	"mes/internal/pkg/errs"
)

// ConfirmOrderCommandHandler orchestrates order confirmation.
//
// Confirmation is the point where a draft becomes binding: the BOM is
// resolved and locked in, its components are exploded into material
// requirements, every requirement is covered by a reservation hold
// (all or nothing) and a work order is instantiated per routing
// operation. Everything happens in one transaction; an uncoverable
// requirement rolls the whole confirmation back and the order stays
// in draft.
type ConfirmOrderCommandHandler struct {
	uowFactory ConfirmOrderUoWFactory
	reserver   services.StockReserver
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
func NewConfirmOrderCommandHandler(uowFactory ConfirmOrderUoWFactory) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
		reserver:   services.NewStockReserver(),
	}
}

// Handle processes the confirmation command.
// Fails with InsufficientStockError when any component cannot be covered,
// with BusinessRuleViolationError when the BOM does not belong to the
// ordered product or is inactive.
func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
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

	billOfMaterials, err := h.resolveBOM(ctx, uow.BOMRepository(), aggregate, cmd.BOMID())
	if err != nil {
		return err
	}

	requirements, err := billOfMaterials.Explode(aggregate.Quantity())
	if err != nil {
		return err
	}

	reservationRepo := uow.ReservationRepository()
	availability, err := h.loadAvailability(ctx, uow.LedgerRepository(), reservationRepo, aggregate.ID(), requirements)
	if err != nil {
		return err
	}

	existing, err := reservationRepo.GetActiveByOrder(ctx, aggregate.ID())
	if err != nil {
		return err
	}

	var expiresAt *time.Time
	if ttl := cmd.ReservationTTL(); ttl > 0 {
		expiry := time.Now().Add(ttl)
		expiresAt = &expiry
	}

	holds, err := h.reserver.Reserve(aggregate, requirements, availability, existing, expiresAt)
	if err != nil {
		return err
	}

	workOrders, err := workOrdersFromRouting(billOfMaterials.Operations())
	if err != nil {
		return err
	}

	if err = aggregate.Confirm(billOfMaterials.ID(), workOrders); err != nil {
		return err
	}

	for _, hold := range holds {
		if containsReservation(existing, hold.ID()) {
			err = reservationRepo.Update(ctx, hold)
		} else {
			err = reservationRepo.Add(ctx, hold)
		}
		if err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h ConfirmOrderCommandHandler) resolveBOM(
	ctx context.Context,
	bomRepo ports.BOMRepository,
	aggregate *order.ManufacturingOrder,
	bomID *kernel.UUID,
) (*bom.BillOfMaterials, error) {
	if bomID == nil {
		return bomRepo.GetDefaultForProduct(ctx, aggregate.ProductID())
	}

	billOfMaterials, err := bomRepo.Get(ctx, *bomID)
	if err != nil {
		return nil, err
	}
	if !billOfMaterials.ProductID().IsEqual(aggregate.ProductID()) {
		return nil, errs.NewBusinessRuleViolationError("BOM belongs to a different product")
	}
	if !billOfMaterials.IsActive() {
		return nil, errs.NewBusinessRuleViolationError("an inactive BOM cannot be confirmed against")
	}

	return billOfMaterials, nil
}

func (h ConfirmOrderCommandHandler) loadAvailability(
	ctx context.Context,
	ledgerRepo ports.LedgerRepository,
	reservationRepo ports.ReservationRepository,
	orderID kernel.UUID,
	requirements []bom.Requirement,
) (map[kernel.UUID]services.Availability, error) {
	availability := make(map[kernel.UUID]services.Availability, len(requirements))

	for _, req := range requirements {
		onHand := kernel.ZeroQuantity(req.Quantity.Unit())
		lastEntry, err := ledgerRepo.GetLastEntry(ctx, req.ComponentProductID)
		if err != nil {
			return nil, err
		}
		if lastEntry != nil {
			onHand = lastEntry.RunningBalance()
		}

		reserved := kernel.ZeroQuantity(req.Quantity.Unit())
		holds, err := reservationRepo.GetActiveByProduct(ctx, req.ComponentProductID)
		if err != nil {
			return nil, err
		}
		for _, hold := range holds {
			if hold.OrderID().IsEqual(orderID) {
				continue
			}
			if reserved, err = reserved.Add(hold.ReservedQuantity()); err != nil {
				return nil, err
			}
		}

		availability[req.ComponentProductID] = services.Availability{OnHand: onHand, Reserved: reserved}
	}

	return availability, nil
}

// workOrdersFromRouting instantiates one pending work order per routing
// operation, chained by sequence: each step depends on its predecessor.
func workOrdersFromRouting(operations []*bom.Operation) ([]*order.WorkOrder, error) {
	sorted := make([]*bom.Operation, len(operations))
	copy(sorted, operations)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Sequence() < sorted[j].Sequence()
	})

	workOrders := make([]*order.WorkOrder, 0, len(sorted))
	var previousID *kernel.UUID

	for _, op := range sorted {
		var dependencies []kernel.UUID
		if previousID != nil {
			dependencies = []kernel.UUID{*previousID}
		}

		workOrder, err := order.NewWorkOrder(
			kernel.NewUUID(), op.WorkCenterID(), op.Duration(), op.Sequence(), dependencies,
		)
		if err != nil {
			return nil, err
		}

		id := workOrder.ID()
		previousID = &id
		workOrders = append(workOrders, workOrder)
	}

	return workOrders, nil
}

func containsReservation(existing []*reservation.MaterialReservation, id kernel.UUID) bool {
	for _, r := range existing {
		if r.ID().IsEqual(id) {
			return true
		}
	}
	return false
}
