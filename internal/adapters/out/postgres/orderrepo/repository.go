package orderrepo

import (
	"context"
	"errors"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/order"
	"mes/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its work orders to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.ManufacturingOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order and its work orders. The write is guarded
// by the version the aggregate was loaded with: when the stored row moved
// on, nothing is written and a ConcurrencyError is returned.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.ManufacturingOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	loadedVersion := dto.Version
	dto.Version = loadedVersion + 1

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Select(
			"bom_id", "status", "priority",
			"planned_start_date", "planned_end_date",
			"actual_start_date", "actual_end_date",
			"assignee", "notes", "cancellation_reason", "version",
		).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrencyError("order", aggregate.ID().String())
	}

	// Work orders never leave the aggregate, so an upsert covers both
	// steps created on confirmation and status changes on existing ones.
	if len(dto.WorkOrders) > 0 {
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{UpdateAll: true}).
			Create(&dto.WorkOrders).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its work orders. Inside a transaction
// the order row stays locked until commit, serializing concurrent
// transitions on the same order.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.ManufacturingOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.preloaded(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewEntityNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByNumber retrieves an order by its reference number.
func (r *GormOrderRepository) GetByNumber(ctx context.Context, number string) (*order.ManufacturingOrder, error) {
	if number == "" {
		return nil, errs.NewValidationError("order number is required")
	}

	var dto OrderDTO
	if err := r.preloaded(ctx).First(&dto, "number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewEntityNotFoundError("order", number)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("WorkOrders", func(db *gorm.DB) *gorm.DB {
		return db.Order("sequence")
	})
}
