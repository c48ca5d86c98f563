// Package errs provides the standardized error taxonomy for the
// manufacturing execution core. It implements a consistent pattern for
// error creation, formatting, and unwrapping that is used throughout
// the application.
//
// The taxonomy covers the recoverable failure classes of the core:
//   - ValidationError: malformed or missing input, caught before any mutation
//   - EntityNotFoundError: a referenced identifier is absent
//   - BusinessRuleViolationError: a state-dependent rule was broken
//   - InvalidStatusTransitionError: an illegal state-machine edge
//   - InsufficientStockError: a ledger or reservation shortfall
//   - ConcurrencyError: a conflicting concurrent mutation was detected
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrInsufficientStock)
//   - A struct type with fields for structured details
//   - Constructor functions, with and without cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//   - Code() returning a stable machine-readable code
//
// None of these is process-fatal; core operations return the most specific
// member and never a bare string, so callers can render details or decide
// on retries.
package errs
