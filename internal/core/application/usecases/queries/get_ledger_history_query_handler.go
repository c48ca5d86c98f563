package queries

import (
	"context"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/stock"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLedgerHistoryQueryHandler reads a product's ledger movements, newest
// first. Entries are appended in seq order; the read model reverses it so
// page one is the recent activity an operator looks for.
type GetLedgerHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetLedgerHistoryQueryHandler creates a handler for ledger history queries.
func NewGetLedgerHistoryQueryHandler(db *gorm.DB) GetLedgerHistoryQueryHandler {
	return GetLedgerHistoryQueryHandler{db: db}
}

// Handle executes the history query.
func (h GetLedgerHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetLedgerHistoryQuery,
) ([]GetLedgerHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			transaction_type,
			quantity,
			unit,
			running_balance,
			reference_type,
			created_by,
			occurred_at
		FROM stock_entries
		WHERE product_id = ?
	`
	args := []any{query.ProductID().Bytes()}

	if query.From() != nil {
		sql += " AND occurred_at >= ?"
		args = append(args, *query.From())
	}
	if query.To() != nil {
		sql += " AND occurred_at <= ?"
		args = append(args, *query.To())
	}
	sql += " ORDER BY seq DESC LIMIT ? OFFSET ?"
	args = append(args, query.Limit(), query.Offset())

	entries := make([]GetLedgerHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetLedgerHistoryQueryResponse
		var id uuid.UUID
		var transactionType int

		err = rows.Scan(
			&id,
			&transactionType,
			&entry.Quantity,
			&entry.Unit,
			&entry.RunningBalance,
			&entry.ReferenceType,
			&entry.CreatedBy,
			&entry.OccurredAt,
		)
		if err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.EntryID = entryID
		entry.TransactionType = stock.TransactionType(transactionType).String()
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
