package ports

import (
	"context"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for manufacturing order
// aggregates, including their work orders.
type OrderRepository interface {
	// Add persists a new manufacturing order aggregate to storage.
	// The order must be valid and its number unique.
	Add(ctx context.Context, aggregate *order.ManufacturingOrder) error

	// Update persists changes to an existing order aggregate and its work
	// orders. The stored version must match the aggregate's version;
	// otherwise a ConcurrencyError is returned and nothing is written.
	Update(ctx context.Context, aggregate *order.ManufacturingOrder) error

	// Get retrieves an order aggregate by its unique identifier. Inside a
	// transaction the order row is locked until commit, serializing
	// concurrent transitions on the same order.
	Get(ctx context.Context, id kernel.UUID) (*order.ManufacturingOrder, error)

	// GetByNumber retrieves an order aggregate by its reference number.
	GetByNumber(ctx context.Context, number string) (*order.ManufacturingOrder, error)
}
