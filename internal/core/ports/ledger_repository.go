package ports

import (
	"context"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/stock"
)

// LedgerRepository defines the persistence contract for the stock ledger.
// The ledger is append only: entries are added, never updated or deleted.
// Corrections are new adjustment entries.
type LedgerRepository interface {
	// Add appends a new ledger entry.
	Add(ctx context.Context, entry *stock.Entry) error

	// GetLastEntry retrieves the most recent ledger entry for a product,
	// which carries the current running balance. Returns nil when the
	// product has no ledger history yet. Inside a transaction the entry
	// row is locked until commit, serializing concurrent appends for the
	// same product.
	GetLastEntry(ctx context.Context, productID kernel.UUID) (*stock.Entry, error)

	// GetHistory retrieves a product's ledger entries in chronological
	// order, newest first, limited to the given page.
	GetHistory(ctx context.Context, productID kernel.UUID, limit, offset int) ([]*stock.Entry, error)
}
