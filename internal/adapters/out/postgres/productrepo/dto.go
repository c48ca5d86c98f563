// Package productrepo provides data transfer objects and mapping functions
// for product catalog persistence. It converts between the product domain
// aggregate and its relational representation.
package productrepo

import (
	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting product
// aggregates. The SKU carries a unique index because it is the business
// identifier operators search by.
type ProductDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	SKU           string    `gorm:"uniqueIndex"`
	Name          string
	ProductType   int
	Unit          string
	MinStockLevel decimal.Decimal `gorm:"type:numeric"`
	MaxStockLevel decimal.Decimal `gorm:"type:numeric"`
	ReorderPoint  decimal.Decimal `gorm:"type:numeric"`
	StandardCost  decimal.Decimal `gorm:"type:numeric"`
	Currency      string
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:            aggregate.ID().Bytes(),
		SKU:           aggregate.SKU(),
		Name:          aggregate.Name(),
		ProductType:   int(aggregate.Type()),
		Unit:          aggregate.Unit().Code(),
		MinStockLevel: aggregate.MinStockLevel().Value(),
		MaxStockLevel: aggregate.MaxStockLevel().Value(),
		ReorderPoint:  aggregate.ReorderPoint().Value(),
		StandardCost:  aggregate.StandardCost().Amount(),
		Currency:      aggregate.StandardCost().Currency(),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	unit, err := kernel.NewUnitOfMeasure(dto.Unit)
	if err != nil {
		return nil, err
	}

	minLevel, err := kernel.NewQuantity(dto.MinStockLevel, unit)
	if err != nil {
		return nil, err
	}
	maxLevel, err := kernel.NewQuantity(dto.MaxStockLevel, unit)
	if err != nil {
		return nil, err
	}
	reorderPoint, err := kernel.NewQuantity(dto.ReorderPoint, unit)
	if err != nil {
		return nil, err
	}

	cost, err := kernel.NewMoney(dto.StandardCost, dto.Currency)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id,
		dto.SKU,
		dto.Name,
		product.Type(dto.ProductType),
		unit,
		minLevel,
		maxLevel,
		reorderPoint,
		cost,
	)
}
