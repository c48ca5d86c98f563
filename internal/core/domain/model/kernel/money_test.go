package kernel_test

import (
	"testing"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, amount string, currency string) kernel.Money {
	t.Helper()
	d, err := decimal.NewFromString(amount)
	require.NoError(t, err)
	m, err := kernel.NewMoney(d, currency)
	require.NoError(t, err)
	return m
}

func TestNewMoney(t *testing.T) {
	t.Run("accepts_iso_currency", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.NewFromInt(10), "EUR")

		require.NoError(t, err)
		assert.Equal(t, "EUR", m.Currency())
	})

	t.Run("rejects_non_iso_currency", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(10), "euro")

		require.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("add_same_currency", func(t *testing.T) {
		sum, err := mustMoney(t, "10.50", "USD").Add(mustMoney(t, "4.50", "USD"))

		require.NoError(t, err)
		assert.True(t, sum.IsEqual(mustMoney(t, "15", "USD")))
	})

	t.Run("sub_same_currency", func(t *testing.T) {
		diff, err := mustMoney(t, "10", "USD").Sub(mustMoney(t, "4", "USD"))

		require.NoError(t, err)
		assert.True(t, diff.IsEqual(mustMoney(t, "6", "USD")))
	})

	t.Run("mixed_currencies_fail", func(t *testing.T) {
		_, err := mustMoney(t, "10", "USD").Add(mustMoney(t, "10", "EUR"))

		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("mul_scalar_rounds_to_cents", func(t *testing.T) {
		cost := mustMoney(t, "1.333", "USD").MulScalar(decimal.NewFromInt(3))

		assert.Equal(t, "4.00 USD", cost.String())
	})
}

func TestMoney_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var m kernel.Money

		require.Error(t, m.Validate())
	})
}
