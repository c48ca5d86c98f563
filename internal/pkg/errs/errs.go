package errs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Sentinel errors for the taxonomy. Callers classify failures with
// errors.Is against these values; the concrete structs carry details.
var (
	ErrValidation              = errors.New("validation failed")
	ErrEntityNotFound          = errors.New("entity not found")
	ErrBusinessRuleViolation   = errors.New("business rule violated")
	ErrInvalidStatusTransition = errors.New("status transition is not allowed")
	ErrInsufficientStock       = errors.New("insufficient stock")
	ErrConcurrency             = errors.New("concurrent modification detected")
)

// Stable machine-readable codes, one per taxonomy member.
const (
	CodeValidation              = "VALIDATION_ERROR"
	CodeEntityNotFound          = "ENTITY_NOT_FOUND"
	CodeBusinessRuleViolation   = "BUSINESS_RULE_VIOLATION"
	CodeInvalidStatusTransition = "INVALID_STATUS_TRANSITION"
	CodeInsufficientStock       = "INSUFFICIENT_STOCK"
	CodeConcurrency             = "CONCURRENCY_CONFLICT"
)

// CodeOf returns the stable code for any taxonomy error,
// or an empty string for errors outside the taxonomy.
func CodeOf(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrEntityNotFound):
		return CodeEntityNotFound
	case errors.Is(err, ErrBusinessRuleViolation):
		return CodeBusinessRuleViolation
	case errors.Is(err, ErrInvalidStatusTransition):
		return CodeInvalidStatusTransition
	case errors.Is(err, ErrInsufficientStock):
		return CodeInsufficientStock
	case errors.Is(err, ErrConcurrency):
		return CodeConcurrency
	default:
		return ""
	}
}

// sanitize flattens values into a single log-safe line.
func sanitize(value any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", value), "\n", " ")
}

// ValidationError reports malformed or missing input, detected before
// any mutation takes place.
type ValidationError struct {
	ParamName string
	Cause     error
}

func NewValidationError(paramName string) *ValidationError {
	return &ValidationError{ParamName: paramName}
}

func NewValidationErrorWithCause(paramName string, cause error) *ValidationError {
	return &ValidationError{ParamName: paramName, Cause: cause}
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValidation, sanitize(e.ParamName), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValidation, sanitize(e.ParamName))
}

func (e *ValidationError) Code() string { return CodeValidation }

func (e *ValidationError) Unwrap() error { return ErrValidation }

// EntityNotFoundError reports a referenced identifier that does not exist.
type EntityNotFoundError struct {
	EntityType string
	ID         any
	Cause      error
}

func NewEntityNotFoundError(entityType string, id any) *EntityNotFoundError {
	return &EntityNotFoundError{EntityType: entityType, ID: id}
}

func NewEntityNotFoundErrorWithCause(entityType string, id any, cause error) *EntityNotFoundError {
	return &EntityNotFoundError{EntityType: entityType, ID: id, Cause: cause}
}

func (e *EntityNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %s (cause: %s)", ErrEntityNotFound, sanitize(e.EntityType), sanitize(e.ID), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s %s", ErrEntityNotFound, sanitize(e.EntityType), sanitize(e.ID))
}

func (e *EntityNotFoundError) Code() string { return CodeEntityNotFound }

func (e *EntityNotFoundError) Unwrap() error { return ErrEntityNotFound }

// BusinessRuleViolationError reports a state-dependent rule broken by an
// otherwise well-formed request, e.g. starting a work order whose
// dependencies are not completed yet.
type BusinessRuleViolationError struct {
	Rule  string
	Cause error
}

func NewBusinessRuleViolationError(rule string) *BusinessRuleViolationError {
	return &BusinessRuleViolationError{Rule: rule}
}

func NewBusinessRuleViolationErrorWithCause(rule string, cause error) *BusinessRuleViolationError {
	return &BusinessRuleViolationError{Rule: rule, Cause: cause}
}

func (e *BusinessRuleViolationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrBusinessRuleViolation, sanitize(e.Rule), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrBusinessRuleViolation, sanitize(e.Rule))
}

func (e *BusinessRuleViolationError) Code() string { return CodeBusinessRuleViolation }

func (e *BusinessRuleViolationError) Unwrap() error { return ErrBusinessRuleViolation }

// InvalidStatusTransitionError reports an illegal state-machine edge.
// The entity is left untouched when this error is returned.
type InvalidStatusTransitionError struct {
	EntityType    string
	CurrentStatus string
	TargetStatus  string
}

func NewInvalidStatusTransitionError(entityType, currentStatus, targetStatus string) *InvalidStatusTransitionError {
	return &InvalidStatusTransitionError{
		EntityType:    entityType,
		CurrentStatus: currentStatus,
		TargetStatus:  targetStatus,
	}
}

func (e *InvalidStatusTransitionError) Error() string {
	return fmt.Sprintf("%s: %s cannot go from %s to %s",
		ErrInvalidStatusTransition, sanitize(e.EntityType), sanitize(e.CurrentStatus), sanitize(e.TargetStatus))
}

func (e *InvalidStatusTransitionError) Code() string { return CodeInvalidStatusTransition }

func (e *InvalidStatusTransitionError) Unwrap() error { return ErrInvalidStatusTransition }

// InsufficientStockError reports a ledger or reservation shortfall.
// Requested and Available let the caller render or retry-decide.
type InsufficientStockError struct {
	ProductID string
	Requested decimal.Decimal
	Available decimal.Decimal
}

func NewInsufficientStockError(productID string, requested, available decimal.Decimal) *InsufficientStockError {
	return &InsufficientStockError{ProductID: productID, Requested: requested, Available: available}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: product %s, requested %s, available %s",
		ErrInsufficientStock, sanitize(e.ProductID), e.Requested.String(), e.Available.String())
}

func (e *InsufficientStockError) Code() string { return CodeInsufficientStock }

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// ConcurrencyError reports a conflicting concurrent mutation,
// typically an optimistic version mismatch on save.
type ConcurrencyError struct {
	EntityType string
	ID         any
	Cause      error
}

func NewConcurrencyError(entityType string, id any) *ConcurrencyError {
	return &ConcurrencyError{EntityType: entityType, ID: id}
}

func NewConcurrencyErrorWithCause(entityType string, id any, cause error) *ConcurrencyError {
	return &ConcurrencyError{EntityType: entityType, ID: id, Cause: cause}
}

func (e *ConcurrencyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %s (cause: %s)", ErrConcurrency, sanitize(e.EntityType), sanitize(e.ID), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s %s", ErrConcurrency, sanitize(e.EntityType), sanitize(e.ID))
}

func (e *ConcurrencyError) Code() string { return CodeConcurrency }

func (e *ConcurrencyError) Unwrap() error { return ErrConcurrency }
