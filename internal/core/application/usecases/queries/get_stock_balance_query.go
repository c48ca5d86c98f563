// Package queries contains read-only operations over the manufacturing
// data. Implements the Query side of the CQRS architecture: handlers read
// via raw SQL on the GORM connection and return flat read models, never
// domain aggregates.
package queries

import (
	"errors"
	"time"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetStockBalanceQueryIsNotConstructed = errors.New(
	"GetStockBalanceQuery must be created via NewGetStockBalanceQuery constructor",
)

// GetStockBalanceQuery retrieves the current ledger balance of a product.
type GetStockBalanceQuery struct {
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStockBalanceQuery creates a query for a product's stock balance.
func NewGetStockBalanceQuery(productID kernel.UUID) (GetStockBalanceQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetStockBalanceQuery{}, err
	}

	return GetStockBalanceQuery{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStockBalanceQuery) Validate() error {
	return q.guard.Validate(ErrGetStockBalanceQueryIsNotConstructed)
}

// ProductID returns the product whose balance is requested.
func (q GetStockBalanceQuery) ProductID() kernel.UUID {
	return q.productID
}

// GetStockBalanceQueryResponse is the stock position read model.
// A product without ledger history reports a zero balance.
type GetStockBalanceQueryResponse struct {
	ProductID kernel.UUID
	Balance   decimal.Decimal
	Unit      string
	AsOf      *time.Time
}
