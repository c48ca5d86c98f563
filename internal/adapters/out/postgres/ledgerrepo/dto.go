// Package ledgerrepo provides data transfer objects and mapping functions
// for stock ledger persistence. The ledger is append only; every row keeps
// the running balance recorded at append time, and a serial sequence column
// gives the entries a total order independent of timestamps.
package ledgerrepo

import (
	"time"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/stock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryDTO represents the database structure for persisting ledger entries.
// Seq is assigned by the database and orders entries within and across
// products; ID stays the entry's external identity.
type EntryDTO struct {
	Seq             int64     `gorm:"primaryKey;autoIncrement"`
	ID              uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	ProductID       uuid.UUID `gorm:"type:uuid;index"`
	WarehouseID     *uuid.UUID `gorm:"type:uuid"`
	TransactionType int
	Quantity        decimal.Decimal `gorm:"type:numeric"`
	Unit            string
	RunningBalance  decimal.Decimal `gorm:"type:numeric"`
	ReferenceID     *uuid.UUID `gorm:"type:uuid"`
	ReferenceType   string
	CreatedBy       string
	OccurredAt      time.Time
}

// TableName specifies the database table name for ledger entries.
func (EntryDTO) TableName() string {
	return "stock_entries"
}

// fromDomain converts a ledger entry to its database representation.
// Seq is left zero so the database assigns the next value.
func fromDomain(entry *stock.Entry) EntryDTO {
	var warehouseID *uuid.UUID
	if w := entry.WarehouseID(); w != nil {
		raw := w.Bytes()
		warehouseID = &raw
	}

	var referenceID *uuid.UUID
	if ref := entry.ReferenceID(); ref != nil {
		raw := ref.Bytes()
		referenceID = &raw
	}

	return EntryDTO{
		ID:              entry.ID().Bytes(),
		ProductID:       entry.ProductID().Bytes(),
		WarehouseID:     warehouseID,
		TransactionType: int(entry.Type()),
		Quantity:        entry.Quantity().Value(),
		Unit:            entry.Quantity().Unit().Code(),
		RunningBalance:  entry.RunningBalance().Value(),
		ReferenceID:     referenceID,
		ReferenceType:   entry.ReferenceType(),
		CreatedBy:       entry.CreatedBy(),
		OccurredAt:      entry.OccurredAt(),
	}
}

// toDomain converts a database DTO to a ledger entry.
func toDomain(dto EntryDTO) (*stock.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	var warehouseID *kernel.UUID
	if dto.WarehouseID != nil {
		w, warehouseErr := kernel.UUIDFromBytes((*dto.WarehouseID)[:])
		if warehouseErr != nil {
			return nil, warehouseErr
		}
		warehouseID = &w
	}

	var referenceID *kernel.UUID
	if dto.ReferenceID != nil {
		ref, referenceErr := kernel.UUIDFromBytes((*dto.ReferenceID)[:])
		if referenceErr != nil {
			return nil, referenceErr
		}
		referenceID = &ref
	}

	unit, err := kernel.NewUnitOfMeasure(dto.Unit)
	if err != nil {
		return nil, err
	}
	quantity, err := kernel.NewQuantity(dto.Quantity, unit)
	if err != nil {
		return nil, err
	}
	runningBalance, err := kernel.NewQuantity(dto.RunningBalance, unit)
	if err != nil {
		return nil, err
	}

	return stock.RestoreEntry(
		id,
		productID,
		warehouseID,
		stock.TransactionType(dto.TransactionType),
		quantity,
		runningBalance,
		referenceID,
		dto.ReferenceType,
		dto.CreatedBy,
		dto.OccurredAt,
	)
}
