// Package bomrepo provides data transfer objects and mapping functions for
// bill of materials persistence. A BOM persists as one header row plus child
// rows for its component lines and routing operations.
package bomrepo

import (
	"time"

	"mes/internal/core/domain/model/bom"
	"mes/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BOMDTO represents the database structure for persisting bill of materials
// headers. Components and operations are loaded alongside it, ordered by
// sequence.
type BOMDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID  uuid.UUID `gorm:"type:uuid;index"`
	Version    string
	IsActive   bool
	IsDefault  bool
	Components []ComponentDTO `gorm:"foreignKey:BOMID;constraint:OnDelete:CASCADE"`
	Operations []OperationDTO `gorm:"foreignKey:BOMID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for BOM headers.
func (BOMDTO) TableName() string {
	return "boms"
}

// ComponentDTO represents one material line of a BOM. Sequence is unique
// within a BOM, so (bom_id, sequence) forms the primary key.
type ComponentDTO struct {
	BOMID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Sequence           int       `gorm:"primaryKey"`
	ComponentProductID uuid.UUID `gorm:"type:uuid;index"`
	QuantityPerUnit    decimal.Decimal `gorm:"type:numeric"`
	Unit               string
	ScrapFactor        decimal.Decimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for BOM components.
func (ComponentDTO) TableName() string {
	return "bom_components"
}

// OperationDTO represents one routing step of a BOM. Duration persists as
// nanoseconds.
type OperationDTO struct {
	BOMID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Sequence     int       `gorm:"primaryKey"`
	WorkCenterID uuid.UUID `gorm:"type:uuid"`
	Duration     time.Duration `gorm:"type:bigint"`
}

// TableName specifies the database table name for BOM operations.
func (OperationDTO) TableName() string {
	return "bom_operations"
}

// fromDomain converts a BOM domain aggregate to its database representation.
func fromDomain(aggregate *bom.BillOfMaterials) BOMDTO {
	id := aggregate.ID().Bytes()

	components := make([]ComponentDTO, 0, len(aggregate.Components()))
	for _, c := range aggregate.Components() {
		components = append(components, ComponentDTO{
			BOMID:              id,
			Sequence:           c.Sequence(),
			ComponentProductID: c.ComponentProductID().Bytes(),
			QuantityPerUnit:    c.QuantityPerUnit().Value(),
			Unit:               c.QuantityPerUnit().Unit().Code(),
			ScrapFactor:        c.ScrapFactor(),
		})
	}

	operations := make([]OperationDTO, 0, len(aggregate.Operations()))
	for _, o := range aggregate.Operations() {
		operations = append(operations, OperationDTO{
			BOMID:        id,
			Sequence:     o.Sequence(),
			WorkCenterID: o.WorkCenterID().Bytes(),
			Duration:     o.Duration(),
		})
	}

	return BOMDTO{
		ID:         id,
		ProductID:  aggregate.ProductID().Bytes(),
		Version:    aggregate.Version(),
		IsActive:   aggregate.IsActive(),
		IsDefault:  aggregate.IsDefault(),
		Components: components,
		Operations: operations,
	}
}

// toDomain converts a database DTO to a BOM domain aggregate.
func toDomain(dto BOMDTO) (*bom.BillOfMaterials, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	components := make([]*bom.Component, 0, len(dto.Components))
	for _, c := range dto.Components {
		component, componentErr := componentToDomain(c)
		if componentErr != nil {
			return nil, componentErr
		}
		components = append(components, component)
	}

	operations := make([]*bom.Operation, 0, len(dto.Operations))
	for _, o := range dto.Operations {
		workCenterID, operationErr := kernel.UUIDFromBytes(o.WorkCenterID[:])
		if operationErr != nil {
			return nil, operationErr
		}
		operation, operationErr := bom.NewOperation(workCenterID, o.Duration, o.Sequence)
		if operationErr != nil {
			return nil, operationErr
		}
		operations = append(operations, operation)
	}

	return bom.RestoreBillOfMaterials(
		id,
		productID,
		dto.Version,
		dto.IsActive,
		dto.IsDefault,
		components,
		operations,
	)
}

func componentToDomain(dto ComponentDTO) (*bom.Component, error) {
	componentProductID, err := kernel.UUIDFromBytes(dto.ComponentProductID[:])
	if err != nil {
		return nil, err
	}

	unit, err := kernel.NewUnitOfMeasure(dto.Unit)
	if err != nil {
		return nil, err
	}
	quantityPerUnit, err := kernel.NewQuantity(dto.QuantityPerUnit, unit)
	if err != nil {
		return nil, err
	}

	return bom.NewComponent(componentProductID, quantityPerUnit, dto.ScrapFactor, dto.Sequence)
}
