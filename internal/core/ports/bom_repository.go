package ports

import (
	"context"

	"mes/internal/core/domain/model/bom"
	"mes/internal/core/domain/model/kernel"
)

// BOMRepository defines the persistence contract for bill of materials
// aggregates.
type BOMRepository interface {
	// Add persists a new bill of materials with its components and
	// operations.
	Add(ctx context.Context, aggregate *bom.BillOfMaterials) error

	// Update persists changes to an existing bill of materials.
	Update(ctx context.Context, aggregate *bom.BillOfMaterials) error

	// Get retrieves a bill of materials by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*bom.BillOfMaterials, error)

	// GetDefaultForProduct retrieves the active default bill of materials
	// for a product. Used by order confirmation when no BOM is named
	// explicitly.
	GetDefaultForProduct(ctx context.Context, productID kernel.UUID) (*bom.BillOfMaterials, error)
}
