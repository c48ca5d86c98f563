package queries

import (
	"errors"
	"time"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetActiveReservationsQueryIsNotConstructed = errors.New(
	"GetActiveReservationsQuery must be created via NewGetActiveReservationsQuery constructor",
)

// GetActiveReservationsQuery retrieves the active material holds of an
// order.
type GetActiveReservationsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetActiveReservationsQuery creates a query for an order's holds.
func NewGetActiveReservationsQuery(orderID kernel.UUID) (GetActiveReservationsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetActiveReservationsQuery{}, err
	}

	return GetActiveReservationsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveReservationsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveReservationsQueryIsNotConstructed)
}

// OrderID returns the order whose holds are requested.
func (q GetActiveReservationsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetActiveReservationsQueryResponse is one material hold read model.
type GetActiveReservationsQueryResponse struct {
	ReservationID     kernel.UUID
	ProductID         kernel.UUID
	ReservedQuantity  decimal.Decimal
	AllocatedQuantity decimal.Decimal
	Unit              string
	ExpiresAt         *time.Time
}
