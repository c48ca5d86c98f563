package kernel

import (
	"fmt"

	"mes/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is an immutable amount tagged with an ISO-4217 currency code.
// Arithmetic requires matching currencies.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// NewMoney creates a Money value. The currency must be a three-letter
// ISO code; the amount may be negative (e.g. cost corrections).
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if len(currency) != 3 {
		return Money{}, errs.NewValidationErrorWithCause(
			"currency",
			fmt.Errorf("%q is not a three-letter ISO code", currency),
		)
	}

	return Money{amount: amount, currency: currency}, nil
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the ISO currency code.
func (m Money) Currency() string {
	return m.currency
}

// Add returns m + other. Fails when the currencies differ.
func (m Money) Add(other Money) (Money, error) {
	if err := m.checkCurrency(other); err != nil {
		return Money{}, err
	}

	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Sub returns m - other. Fails when the currencies differ.
func (m Money) Sub(other Money) (Money, error) {
	if err := m.checkCurrency(other); err != nil {
		return Money{}, err
	}

	return Money{amount: m.amount.Sub(other.amount), currency: m.currency}, nil
}

// MulScalar returns m scaled by a unitless factor, rounded to cents.
func (m Money) MulScalar(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor).Round(2), currency: m.currency}
}

// IsEqual compares amount and currency.
func (m Money) IsEqual(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// String implements fmt.Stringer, e.g. "12.50 EUR".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.StringFixed(2), m.currency)
}

// Validate checks that the value carries a currency.
func (m Money) Validate() error {
	if m.currency == "" {
		return errs.NewValidationError("money must be created via NewMoney")
	}
	return nil
}

func (m Money) checkCurrency(other Money) error {
	if m.currency != other.currency {
		return errs.NewValidationErrorWithCause(
			"currencies are incompatible",
			fmt.Errorf("%q does not match %q", other.currency, m.currency),
		)
	}
	return nil
}
