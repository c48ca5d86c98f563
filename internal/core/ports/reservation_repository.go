package ports

import (
	"context"
	"time"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/reservation"
)

// ReservationRepository defines the persistence contract for material
// reservation aggregates.
type ReservationRepository interface {
	// Add persists a new reservation to storage.
	Add(ctx context.Context, aggregate *reservation.MaterialReservation) error

	// Update persists changes to an existing reservation. The stored
	// version must match the aggregate's version; otherwise a
	// ConcurrencyError is returned and nothing is written.
	Update(ctx context.Context, aggregate *reservation.MaterialReservation) error

	// Get retrieves a reservation by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*reservation.MaterialReservation, error)

	// GetActiveByOrder retrieves the active reservations held by an order.
	GetActiveByOrder(ctx context.Context, orderID kernel.UUID) ([]*reservation.MaterialReservation, error)

	// GetActiveByProduct retrieves all active reservations holding a
	// product, across orders. Used to compute the quantity available for
	// new holds.
	GetActiveByProduct(ctx context.Context, productID kernel.UUID) ([]*reservation.MaterialReservation, error)

	// GetExpired retrieves active reservations whose expiry has passed.
	GetExpired(ctx context.Context, now time.Time) ([]*reservation.MaterialReservation, error)
}
