package bomrepo

import (
	"context"
	"errors"

	"mes/internal/core/domain/model/bom"
	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBOMRepository implements BOMRepository using GORM.
type GormBOMRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBOMRepository creates a new GORM BOM repository.
func NewGormBOMRepository(db *gorm.DB, tracker aggregateTracker) *GormBOMRepository {
	return &GormBOMRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new BOM with its components and operations. When the BOM is
// flagged as default, the default flag is cleared on every sibling of the
// same product so at most one default remains.
func (r *GormBOMRepository) Add(ctx context.Context, aggregate *bom.BillOfMaterials) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if dto.IsDefault {
		if err := r.clearSiblingDefault(ctx, dto); err != nil {
			return err
		}
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves changes to an existing BOM header. Components and operations
// are immutable after creation; a changed recipe is a new BOM version.
func (r *GormBOMRepository) Update(ctx context.Context, aggregate *bom.BillOfMaterials) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if dto.IsDefault {
		if err := r.clearSiblingDefault(ctx, dto); err != nil {
			return err
		}
	}

	result := r.db.WithContext(ctx).
		Model(&BOMDTO{}).
		Where("id = ?", dto.ID).
		Select("version", "is_active", "is_default").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewEntityNotFoundError("bill of materials", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a BOM by ID with its components and operations.
func (r *GormBOMRepository) Get(ctx context.Context, id kernel.UUID) (*bom.BillOfMaterials, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BOMDTO
	err := r.preloaded(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewEntityNotFoundError("bill of materials", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetDefaultForProduct retrieves the active default BOM of a product.
func (r *GormBOMRepository) GetDefaultForProduct(
	ctx context.Context,
	productID kernel.UUID,
) (*bom.BillOfMaterials, error) {
	if err := productID.Validate(); err != nil {
		return nil, err
	}

	var dto BOMDTO
	err := r.preloaded(ctx).
		First(&dto, "product_id = ? AND is_default AND is_active", productID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewEntityNotFoundError("default bill of materials", productID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormBOMRepository) preloaded(ctx context.Context) *gorm.DB {
	bySequence := func(db *gorm.DB) *gorm.DB {
		return db.Order("sequence")
	}
	return r.db.WithContext(ctx).
		Preload("Components", bySequence).
		Preload("Operations", bySequence)
}

func (r *GormBOMRepository) clearSiblingDefault(ctx context.Context, dto BOMDTO) error {
	return r.db.WithContext(ctx).
		Model(&BOMDTO{}).
		Where("product_id = ? AND id <> ?", dto.ProductID, dto.ID).
		Update("is_default", false).Error
}
