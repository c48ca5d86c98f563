package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"
)

// GetStockBalanceQueryHandler reads a product's running balance straight
// from its newest ledger entry.
type GetStockBalanceQueryHandler struct {
	db *gorm.DB
}

// NewGetStockBalanceQueryHandler creates a handler for stock balance queries.
func NewGetStockBalanceQueryHandler(db *gorm.DB) GetStockBalanceQueryHandler {
	return GetStockBalanceQueryHandler{db: db}
}

// Handle executes the balance query. A product with no ledger entries
// yields a zero balance with an empty unit.
func (h GetStockBalanceQueryHandler) Handle(
	ctx context.Context,
	query GetStockBalanceQuery,
) (GetStockBalanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStockBalanceQueryResponse{}, err
	}

	response := GetStockBalanceQueryResponse{ProductID: query.ProductID()}

	var occurredAt time.Time
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			running_balance,
			unit,
			occurred_at
		FROM stock_entries
		WHERE product_id = ?
		ORDER BY seq DESC
		LIMIT 1
	`, query.ProductID().Bytes()).Row()

	err := row.Scan(&response.Balance, &response.Unit, &occurredAt)
	if errors.Is(err, sql.ErrNoRows) {
		return response, nil
	}
	if err != nil {
		return GetStockBalanceQueryResponse{}, err
	}

	response.AsOf = &occurredAt
	return response, nil
}
