package stock_test

import (
	"testing"
	"time"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/stock"
	"mes/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pieces(t *testing.T, value string) kernel.Quantity {
	t.Helper()
	unit, err := kernel.NewUnitOfMeasure("pcs")
	require.NoError(t, err)
	q, err := kernel.NewQuantityFromString(value, unit)
	require.NoError(t, err)
	return q
}

func draft(t *testing.T, txType stock.TransactionType, qty string) stock.Draft {
	t.Helper()
	return stock.Draft{
		ProductID: kernel.NewUUID(),
		Type:      txType,
		Quantity:  pieces(t, qty),
		CreatedBy: "operator-1",
	}
}

func TestTransactionType_Sign(t *testing.T) {
	inbound := []stock.TransactionType{
		stock.TransactionReceipt,
		stock.TransactionAdjustmentIn,
		stock.TransactionProductionReceipt,
	}
	outbound := []stock.TransactionType{
		stock.TransactionIssue,
		stock.TransactionAdjustmentOut,
		stock.TransactionProductionIssue,
	}

	for _, txType := range inbound {
		assert.True(t, txType.IsInbound(), txType.String())
	}
	for _, txType := range outbound {
		assert.False(t, txType.IsInbound(), txType.String())
	}
}

func TestNextEntry(t *testing.T) {
	now := time.Now()

	t.Run("receipt_adds_to_balance", func(t *testing.T) {
		entry, err := stock.NextEntry(draft(t, stock.TransactionReceipt, "100"), pieces(t, "0"), now)

		require.NoError(t, err)
		assert.True(t, entry.RunningBalance().IsEqual(pieces(t, "100")))
		assert.True(t, entry.SignedQuantity().IsEqual(pieces(t, "100")))
	})

	t.Run("issue_subtracts_from_balance", func(t *testing.T) {
		entry, err := stock.NextEntry(draft(t, stock.TransactionProductionIssue, "40"), pieces(t, "100"), now)

		require.NoError(t, err)
		assert.True(t, entry.RunningBalance().IsEqual(pieces(t, "60")))
		assert.True(t, entry.SignedQuantity().IsEqual(pieces(t, "-40")))
	})

	t.Run("issue_below_zero_fails_with_insufficient_stock", func(t *testing.T) {
		d := draft(t, stock.TransactionIssue, "70")

		_, err := stock.NextEntry(d, pieces(t, "60"), now)

		require.ErrorIs(t, err, errs.ErrInsufficientStock)
		var stockErr *errs.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, "70", stockErr.Requested.String())
		assert.Equal(t, "60", stockErr.Available.String())
	})

	t.Run("rejects_zero_quantity", func(t *testing.T) {
		_, err := stock.NextEntry(draft(t, stock.TransactionReceipt, "0"), pieces(t, "0"), now)

		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("rejects_missing_actor", func(t *testing.T) {
		d := draft(t, stock.TransactionReceipt, "10")
		d.CreatedBy = ""

		_, err := stock.NextEntry(d, pieces(t, "0"), now)

		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("rejects_unknown_transaction_type", func(t *testing.T) {
		d := draft(t, stock.TransactionUnknown, "10")

		_, err := stock.NextEntry(d, pieces(t, "0"), now)

		require.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestLedgerReplay(t *testing.T) {
	t.Run("replaying_entries_reproduces_every_running_balance", func(t *testing.T) {
		now := time.Now()
		productID := kernel.NewUUID()

		mkDraft := func(txType stock.TransactionType, qty string) stock.Draft {
			return stock.Draft{
				ProductID: productID,
				Type:      txType,
				Quantity:  pieces(t, qty),
				CreatedBy: "operator-1",
			}
		}

		steps := []stock.Draft{
			mkDraft(stock.TransactionReceipt, "100"),
			mkDraft(stock.TransactionProductionIssue, "40"),
			mkDraft(stock.TransactionAdjustmentIn, "5"),
			mkDraft(stock.TransactionAdjustmentOut, "15"),
			mkDraft(stock.TransactionProductionReceipt, "10"),
		}

		balance := pieces(t, "0")
		entries := make([]*stock.Entry, 0, len(steps))
		for _, d := range steps {
			entry, err := stock.NextEntry(d, balance, now)
			require.NoError(t, err)
			entries = append(entries, entry)
			balance = entry.RunningBalance()
		}

		// Replay from zero and compare against each stored balance.
		replayed := pieces(t, "0")
		for _, entry := range entries {
			var err error
			replayed, err = replayed.Add(entry.SignedQuantity())
			require.NoError(t, err)
			assert.True(t, replayed.IsEqual(entry.RunningBalance()))
		}
		assert.True(t, replayed.IsEqual(pieces(t, "60")))
	})

	t.Run("failed_append_leaves_balance_untouched", func(t *testing.T) {
		now := time.Now()
		balance := pieces(t, "30")

		_, err := stock.NextEntry(draft(t, stock.TransactionIssue, "31"), balance, now)

		require.ErrorIs(t, err, errs.ErrInsufficientStock)
		assert.True(t, balance.IsEqual(pieces(t, "30")))
	})
}
