package stock

import (
	"fmt"

	"mes/internal/pkg/errs"
)

// TransactionType classifies a ledger entry and determines the sign its
// quantity contributes to the running balance.
type TransactionType int

const (
	// TransactionUnknown represents an invalid or undefined type.
	TransactionUnknown TransactionType = iota

	// TransactionReceipt records incoming stock from procurement.
	TransactionReceipt

	// TransactionIssue records outgoing stock to consumers.
	TransactionIssue

	// TransactionAdjustmentIn corrects the balance upwards.
	TransactionAdjustmentIn

	// TransactionAdjustmentOut corrects the balance downwards.
	TransactionAdjustmentOut

	// TransactionProductionReceipt records finished goods entering stock
	// when a manufacturing order completes.
	TransactionProductionReceipt

	// TransactionProductionIssue records components consumed by a
	// manufacturing order.
	TransactionProductionIssue
)

func getTransactionTypeStrings() map[TransactionType]string {
	return map[TransactionType]string{
		TransactionUnknown:           "unknown",
		TransactionReceipt:           "receipt",
		TransactionIssue:             "issue",
		TransactionAdjustmentIn:      "adjustment_in",
		TransactionAdjustmentOut:     "adjustment_out",
		TransactionProductionReceipt: "production_receipt",
		TransactionProductionIssue:   "production_issue",
	}
}

// Validate checks that the type is one of the defined transaction types.
func (t TransactionType) Validate() error {
	switch t {
	case TransactionReceipt, TransactionIssue,
		TransactionAdjustmentIn, TransactionAdjustmentOut,
		TransactionProductionReceipt, TransactionProductionIssue:
		return nil
	default:
		return errs.NewValidationErrorWithCause(
			"transaction type",
			fmt.Errorf("%d is not a valid transaction type", t),
		)
	}
}

// IsInbound reports whether entries of this type add to the balance.
func (t TransactionType) IsInbound() bool {
	switch t {
	case TransactionReceipt, TransactionAdjustmentIn, TransactionProductionReceipt:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t TransactionType) String() string {
	if s, ok := getTransactionTypeStrings()[t]; ok {
		return s
	}
	return "unknown"
}
