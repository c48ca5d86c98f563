package queries

import (
	"errors"
	"time"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetLedgerHistoryQueryIsNotConstructed = errors.New(
		"GetLedgerHistoryQuery must be created via NewGetLedgerHistoryQuery constructor",
	)
	ErrDateRangeIsInvalid = errors.New("history range end cannot precede its start")
	ErrLimitIsInvalid     = errors.New("limit must be greater than 0")
)

const maxHistoryLimit = 500

// GetLedgerHistoryQuery retrieves a page of a product's ledger entries,
// optionally bounded to a date range.
type GetLedgerHistoryQuery struct {
	productID kernel.UUID
	from      *time.Time
	to        *time.Time
	limit     int
	offset    int

	guard guard.ConstructorGuard
}

// NewGetLedgerHistoryQuery creates a query for ledger history. A zero or
// oversized limit is clamped to the maximum page size.
func NewGetLedgerHistoryQuery(
	productID kernel.UUID,
	from, to *time.Time,
	limit, offset int,
) (GetLedgerHistoryQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetLedgerHistoryQuery{}, err
	}
	if from != nil && to != nil && to.Before(*from) {
		return GetLedgerHistoryQuery{}, ErrDateRangeIsInvalid
	}
	if limit < 0 {
		return GetLedgerHistoryQuery{}, ErrLimitIsInvalid
	}
	if limit == 0 || limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}

	return GetLedgerHistoryQuery{
		productID: productID,
		from:      from,
		to:        to,
		limit:     limit,
		offset:    offset,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLedgerHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetLedgerHistoryQueryIsNotConstructed)
}

// ProductID returns the product whose history is requested.
func (q GetLedgerHistoryQuery) ProductID() kernel.UUID {
	return q.productID
}

// From returns the inclusive lower bound of the range, nil for none.
func (q GetLedgerHistoryQuery) From() *time.Time {
	return q.from
}

// To returns the inclusive upper bound of the range, nil for none.
func (q GetLedgerHistoryQuery) To() *time.Time {
	return q.to
}

// Limit returns the page size.
func (q GetLedgerHistoryQuery) Limit() int {
	return q.limit
}

// Offset returns the page offset.
func (q GetLedgerHistoryQuery) Offset() int {
	return q.offset
}

// GetLedgerHistoryQueryResponse is one ledger movement read model.
type GetLedgerHistoryQueryResponse struct {
	EntryID        kernel.UUID
	TransactionType string
	Quantity       decimal.Decimal
	Unit           string
	RunningBalance decimal.Decimal
	ReferenceType  string
	CreatedBy      string
	OccurredAt     time.Time
}
