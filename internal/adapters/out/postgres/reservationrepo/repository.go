package reservationrepo

import (
	"context"
	"errors"
	"time"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/reservation"
	"mes/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReservationRepository implements ReservationRepository using GORM.
type GormReservationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormReservationRepository creates a new GORM reservation repository.
func NewGormReservationRepository(db *gorm.DB, tracker aggregateTracker) *GormReservationRepository {
	return &GormReservationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new reservation to the database.
func (r *GormReservationRepository) Add(ctx context.Context, aggregate *reservation.MaterialReservation) error {
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

// Update saves an existing reservation. The write is guarded by the version
// the aggregate was loaded with: when the stored row moved on, nothing is
// written and a ConcurrencyError is returned.
func (r *GormReservationRepository) Update(ctx context.Context, aggregate *reservation.MaterialReservation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	loadedVersion := dto.Version
	dto.Version = loadedVersion + 1

	result := r.db.WithContext(ctx).
		Model(&ReservationDTO{}).
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Select("reserved_quantity", "allocated_quantity", "is_active", "expires_at", "version").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrencyError("material reservation", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a reservation by ID.
func (r *GormReservationRepository) Get(ctx context.Context, id kernel.UUID) (*reservation.MaterialReservation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReservationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewEntityNotFoundError("material reservation", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByOrder retrieves the active reservations held by an order.
func (r *GormReservationRepository) GetActiveByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*reservation.MaterialReservation, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	return r.find(ctx, "order_id = ? AND is_active", orderID.Bytes())
}

// GetActiveByProduct retrieves all active reservations holding a product,
// across orders.
func (r *GormReservationRepository) GetActiveByProduct(
	ctx context.Context,
	productID kernel.UUID,
) ([]*reservation.MaterialReservation, error) {
	if err := productID.Validate(); err != nil {
		return nil, err
	}

	return r.find(ctx, "product_id = ? AND is_active", productID.Bytes())
}

// GetExpired retrieves active reservations whose expiry has passed.
func (r *GormReservationRepository) GetExpired(
	ctx context.Context,
	now time.Time,
) ([]*reservation.MaterialReservation, error) {
	return r.find(ctx, "is_active AND expires_at IS NOT NULL AND expires_at < ?", now)
}

func (r *GormReservationRepository) find(
	ctx context.Context,
	condition string,
	args ...any,
) ([]*reservation.MaterialReservation, error) {
	var dtos []ReservationDTO
	if err := r.db.WithContext(ctx).Where(condition, args...).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	reservations := make([]*reservation.MaterialReservation, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, aggregate)
	}

	return reservations, nil
}
