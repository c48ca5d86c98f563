package ledgerrepo

import (
	"context"
	"errors"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/stock"
	"mes/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLedgerRepository implements LedgerRepository using GORM. The ledger
// exposes no update or delete: corrections are new adjustment entries.
type GormLedgerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLedgerRepository creates a new GORM ledger repository.
func NewGormLedgerRepository(db *gorm.DB, tracker aggregateTracker) *GormLedgerRepository {
	return &GormLedgerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends a new ledger entry.
func (r *GormLedgerRepository) Add(ctx context.Context, entry *stock.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}

// GetLastEntry retrieves the most recent ledger entry for a product, which
// carries the current running balance. Returns nil when the product has no
// history yet.
//
// Inside a transaction an advisory lock on the product id is held until
// commit, serializing concurrent appends for the same product. A row lock
// on the last entry cannot do this: a waiting reader re-reads the same
// superseded row after the winner commits, and an empty ledger has no row
// to lock at all.
func (r *GormLedgerRepository) GetLastEntry(ctx context.Context, productID kernel.UUID) (*stock.Entry, error) {
	if err := productID.Validate(); err != nil {
		return nil, err
	}

	err := r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtextextended(?, 0))", productID.String()).
		Error
	if err != nil {
		return nil, err
	}

	var dto EntryDTO
	err = r.db.WithContext(ctx).
		Where("product_id = ?", productID.Bytes()).
		Order("seq DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetHistory retrieves a product's ledger entries, newest first, limited to
// the given page.
func (r *GormLedgerRepository) GetHistory(
	ctx context.Context,
	productID kernel.UUID,
	limit, offset int,
) ([]*stock.Entry, error) {
	if err := productID.Validate(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, errs.NewValidationError("history limit must be greater than 0")
	}

	var dtos []EntryDTO
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID.Bytes()).
		Order("seq DESC").
		Limit(limit).
		Offset(offset).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*stock.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, entryErr := toDomain(dto)
		if entryErr != nil {
			return nil, entryErr
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
