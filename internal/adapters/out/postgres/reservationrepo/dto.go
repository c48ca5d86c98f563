// Package reservationrepo provides data transfer objects and mapping
// functions for material reservation persistence. A reservation row carries
// an optimistic version used to detect concurrent writers.
package reservationrepo

import (
	"time"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/reservation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReservationDTO represents the database structure for persisting material
// reservations. Lookups run by order, by product and by expiry, so all
// three carry indexes.
type ReservationDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID `gorm:"type:uuid;index"`
	ProductID         uuid.UUID `gorm:"type:uuid;index"`
	ReservedQuantity  decimal.Decimal `gorm:"type:numeric"`
	AllocatedQuantity decimal.Decimal `gorm:"type:numeric"`
	Unit              string
	IsActive          bool `gorm:"index"`
	ExpiresAt         *time.Time `gorm:"index"`
	Version           int
}

// TableName specifies the database table name for reservation entities.
func (ReservationDTO) TableName() string {
	return "reservations"
}

// fromDomain converts a reservation domain aggregate to its database representation.
func fromDomain(aggregate *reservation.MaterialReservation) ReservationDTO {
	return ReservationDTO{
		ID:                aggregate.ID().Bytes(),
		OrderID:           aggregate.OrderID().Bytes(),
		ProductID:         aggregate.ProductID().Bytes(),
		ReservedQuantity:  aggregate.ReservedQuantity().Value(),
		AllocatedQuantity: aggregate.AllocatedQuantity().Value(),
		Unit:              aggregate.ReservedQuantity().Unit().Code(),
		IsActive:          aggregate.IsActive(),
		ExpiresAt:         aggregate.ExpiresAt(),
		Version:           aggregate.Version(),
	}
}

// toDomain converts a database DTO to a reservation domain aggregate.
func toDomain(dto ReservationDTO) (*reservation.MaterialReservation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	unit, err := kernel.NewUnitOfMeasure(dto.Unit)
	if err != nil {
		return nil, err
	}
	reserved, err := kernel.NewQuantity(dto.ReservedQuantity, unit)
	if err != nil {
		return nil, err
	}
	allocated, err := kernel.NewQuantity(dto.AllocatedQuantity, unit)
	if err != nil {
		return nil, err
	}

	return reservation.RestoreMaterialReservation(
		id,
		orderID,
		productID,
		reserved,
		allocated,
		dto.IsActive,
		dto.ExpiresAt,
		dto.Version,
	)
}
