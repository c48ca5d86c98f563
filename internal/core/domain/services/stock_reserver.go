package services

import (
	"mes/internal/core/domain/model/bom"
	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/order"
	"mes/internal/core/domain/model/reservation"
	"mes/internal/pkg/errs"

	"time"
)

// Availability describes the stock position of a single product at
// reservation time.
//
// OnHand is the current stock ledger balance. Reserved is the total still
// held by active reservations of other orders; the reserving order's own
// holds are excluded because a repeated reservation replaces them.
type Availability struct {
	OnHand   kernel.Quantity
	Reserved kernel.Quantity
}

// ToReserve returns the quantity a new hold may claim.
func (a Availability) ToReserve() (kernel.Quantity, error) {
	return a.OnHand.Sub(a.Reserved)
}

// StockReserver is a domain service that turns exploded material
// requirements into reservation holds.
//
// Business rules:
//   - Reservation is all or nothing. Every requirement is checked against
//     availability before any hold is created or replaced; one shortage
//     fails the whole set and leaves existing holds untouched.
//   - Availability is the ledger balance minus the active holds of other
//     orders. Allocated quantities have already left the ledger, so they
//     never count twice.
//   - A product the order already holds is re-reserved, not stacked. A
//     BOM listing the same component on several lines is merged into one
//     requirement first, so each (order, product) pair carries one hold.
//
// Example usage:
//
//	reserver := services.NewStockReserver()
//	holds, err := reserver.Reserve(o, requirements, availability, existing, &expiry)
//	if errors.Is(err, errs.ErrInsufficientStock) {
//	    // At least one component cannot be covered; nothing was reserved.
//	    return
//	}
type StockReserver struct{}

// NewStockReserver creates a new StockReserver instance.
func NewStockReserver() StockReserver {
	return StockReserver{}
}

// Reserve plans the holds for an order's material requirements.
//
// availability must contain an entry for every required product, keyed by
// product id. existing carries the order's own reservations; active ones
// are replaced in place and returned alongside newly created holds.
//
// Returns the full set of holds backing the order, or an
// InsufficientStockError naming the first component that cannot be
// covered. On error no reservation has been created or modified.
func (s StockReserver) Reserve(
	o *order.ManufacturingOrder,
	requirements []bom.Requirement,
	availability map[kernel.UUID]Availability,
	existing []*reservation.MaterialReservation,
	expiresAt *time.Time,
) ([]*reservation.MaterialReservation, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	merged, err := mergeRequirements(requirements)
	if err != nil {
		return nil, err
	}

	for _, req := range merged {
		avail, ok := availability[req.ComponentProductID]
		if !ok {
			return nil, errs.NewEntityNotFoundError("stock balance", req.ComponentProductID.String())
		}

		toReserve, err := avail.ToReserve()
		if err != nil {
			return nil, err
		}

		short, err := req.Quantity.GreaterThan(toReserve)
		if err != nil {
			return nil, err
		}
		if short {
			return nil, errs.NewInsufficientStockError(
				req.ComponentProductID.String(),
				req.Quantity.Value(),
				toReserve.Value(),
			)
		}
	}

	holds := make([]*reservation.MaterialReservation, 0, len(merged))
	for _, req := range merged {
		if hold := findActiveHold(existing, req.ComponentProductID); hold != nil {
			if err := hold.ReReserve(req.Quantity); err != nil {
				return nil, err
			}
			holds = append(holds, hold)
			continue
		}

		hold, err := reservation.NewMaterialReservation(
			kernel.NewUUID(), o.ID(), req.ComponentProductID, req.Quantity, expiresAt,
		)
		if err != nil {
			return nil, err
		}
		holds = append(holds, hold)
	}

	return holds, nil
}

// mergeRequirements sums requirement lines that name the same component
// product, keeping the first-seen order. BOM sequences are unique but
// component products are not.
func mergeRequirements(requirements []bom.Requirement) ([]bom.Requirement, error) {
	merged := make([]bom.Requirement, 0, len(requirements))
	index := make(map[kernel.UUID]int, len(requirements))

	for _, req := range requirements {
		i, ok := index[req.ComponentProductID]
		if !ok {
			index[req.ComponentProductID] = len(merged)
			merged = append(merged, req)
			continue
		}

		total, err := merged[i].Quantity.Add(req.Quantity)
		if err != nil {
			return nil, err
		}
		merged[i].Quantity = total
	}

	return merged, nil
}

func findActiveHold(
	existing []*reservation.MaterialReservation,
	productID kernel.UUID,
) *reservation.MaterialReservation {
	for _, r := range existing {
		if r.IsActive() && r.ProductID().IsEqual(productID) {
			return r
		}
	}
	return nil
}
