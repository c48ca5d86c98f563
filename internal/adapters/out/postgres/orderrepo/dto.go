// Package orderrepo provides data transfer objects and mapping functions for
// manufacturing order persistence. An order persists as one header row plus
// child rows for its work orders; the header carries an optimistic version
// used to detect concurrent writers.
package orderrepo

import (
	"strings"
	"time"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting manufacturing
// order aggregates. The order number carries a unique index because it is
// the business identifier operators search by.
type OrderDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number             string    `gorm:"uniqueIndex"`
	ProductID          uuid.UUID `gorm:"type:uuid;index"`
	BOMID              *uuid.UUID `gorm:"type:uuid"`
	Quantity           decimal.Decimal `gorm:"type:numeric"`
	Unit               string
	Status             int `gorm:"index"`
	Priority           int
	PlannedStartDate   *time.Time
	PlannedEndDate     *time.Time
	ActualStartDate    *time.Time
	ActualEndDate      *time.Time
	CreatedBy          string
	Assignee           string
	Notes              string
	CancellationReason string
	Version            int
	WorkOrders         []WorkOrderDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// WorkOrderDTO represents one routing step row of an order. Durations
// persist as nanoseconds; dependencies persist as a comma separated list of
// work order ids.
type WorkOrderDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID `gorm:"type:uuid;index"`
	WorkCenterID      uuid.UUID `gorm:"type:uuid"`
	Sequence          int
	Status            int
	EstimatedDuration time.Duration `gorm:"type:bigint"`
	ActualDuration    time.Duration `gorm:"type:bigint"`
	Assignee          string
	Dependencies      string
}

// TableName specifies the database table name for work order entities.
func (WorkOrderDTO) TableName() string {
	return "work_orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.ManufacturingOrder) OrderDTO {
	id := aggregate.ID().Bytes()

	var bomID *uuid.UUID
	if b := aggregate.BOMID(); b != nil {
		raw := b.Bytes()
		bomID = &raw
	}

	workOrders := make([]WorkOrderDTO, 0, len(aggregate.WorkOrders()))
	for _, w := range aggregate.WorkOrders() {
		workOrders = append(workOrders, WorkOrderDTO{
			ID:                w.ID().Bytes(),
			OrderID:           id,
			WorkCenterID:      w.WorkCenterID().Bytes(),
			Sequence:          w.Sequence(),
			Status:            int(w.Status()),
			EstimatedDuration: w.EstimatedDuration(),
			ActualDuration:    w.ActualDuration(),
			Assignee:          w.Assignee(),
			Dependencies:      encodeDependencies(w.Dependencies()),
		})
	}

	return OrderDTO{
		ID:                 id,
		Number:             aggregate.Number(),
		ProductID:          aggregate.ProductID().Bytes(),
		BOMID:              bomID,
		Quantity:           aggregate.Quantity().Value(),
		Unit:               aggregate.Quantity().Unit().Code(),
		Status:             int(aggregate.Status()),
		Priority:           aggregate.Priority(),
		PlannedStartDate:   aggregate.PlannedStartDate(),
		PlannedEndDate:     aggregate.PlannedEndDate(),
		ActualStartDate:    aggregate.ActualStartDate(),
		ActualEndDate:      aggregate.ActualEndDate(),
		CreatedBy:          aggregate.CreatedBy(),
		Assignee:           aggregate.Assignee(),
		Notes:              aggregate.Notes(),
		CancellationReason: aggregate.CancellationReason(),
		Version:            aggregate.Version(),
		WorkOrders:         workOrders,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.ManufacturingOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	var bomID *kernel.UUID
	if dto.BOMID != nil {
		b, bomErr := kernel.UUIDFromBytes((*dto.BOMID)[:])
		if bomErr != nil {
			return nil, bomErr
		}
		bomID = &b
	}

	unit, err := kernel.NewUnitOfMeasure(dto.Unit)
	if err != nil {
		return nil, err
	}
	quantity, err := kernel.NewQuantity(dto.Quantity, unit)
	if err != nil {
		return nil, err
	}

	workOrders := make([]*order.WorkOrder, 0, len(dto.WorkOrders))
	for _, w := range dto.WorkOrders {
		workOrder, workOrderErr := workOrderToDomain(w)
		if workOrderErr != nil {
			return nil, workOrderErr
		}
		workOrders = append(workOrders, workOrder)
	}

	return order.RestoreManufacturingOrder(
		id,
		dto.Number,
		productID,
		bomID,
		quantity,
		order.Status(dto.Status),
		dto.Priority,
		dto.PlannedStartDate,
		dto.PlannedEndDate,
		dto.ActualStartDate,
		dto.ActualEndDate,
		dto.CreatedBy,
		dto.Assignee,
		dto.Notes,
		dto.CancellationReason,
		workOrders,
		dto.Version,
	)
}

func workOrderToDomain(dto WorkOrderDTO) (*order.WorkOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	workCenterID, err := kernel.UUIDFromBytes(dto.WorkCenterID[:])
	if err != nil {
		return nil, err
	}
	dependencies, err := decodeDependencies(dto.Dependencies)
	if err != nil {
		return nil, err
	}

	return order.RestoreWorkOrder(
		id,
		workCenterID,
		dto.EstimatedDuration,
		dto.ActualDuration,
		dto.Sequence,
		order.WorkOrderStatus(dto.Status),
		dto.Assignee,
		dependencies,
	)
}

func encodeDependencies(ids []kernel.UUID) string {
	if len(ids) == 0 {
		return ""
	}
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, id.String())
	}
	return strings.Join(parts, ",")
}

func decodeDependencies(encoded string) ([]kernel.UUID, error) {
	if encoded == "" {
		return nil, nil
	}
	parts := strings.Split(encoded, ",")
	ids := make([]kernel.UUID, 0, len(parts))
	for _, part := range parts {
		id, err := kernel.UUIDFromString(part)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
