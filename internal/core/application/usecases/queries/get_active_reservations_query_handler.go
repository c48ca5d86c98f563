package queries

import (
	"context"

	"mes/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveReservationsQueryHandler reads an order's active material
// holds.
type GetActiveReservationsQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveReservationsQueryHandler creates a handler for reservation queries.
func NewGetActiveReservationsQueryHandler(db *gorm.DB) GetActiveReservationsQueryHandler {
	return GetActiveReservationsQueryHandler{db: db}
}

// Handle executes the reservation query.
func (h GetActiveReservationsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveReservationsQuery,
) ([]GetActiveReservationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	reservations := make([]GetActiveReservationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			reserved_quantity,
			allocated_quantity,
			unit,
			expires_at
		FROM reservations
		WHERE order_id = ? AND is_active
		ORDER BY id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var hold GetActiveReservationsQueryResponse
		var id, productID uuid.UUID

		err = rows.Scan(
			&id,
			&productID,
			&hold.ReservedQuantity,
			&hold.AllocatedQuantity,
			&hold.Unit,
			&hold.ExpiresAt,
		)
		if err != nil {
			return nil, err
		}

		if hold.ReservationID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if hold.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		reservations = append(reservations, hold)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reservations, nil
}
