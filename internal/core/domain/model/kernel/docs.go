// Package kernel provides core domain primitives for the manufacturing
// execution system. It implements fundamental building blocks following
// Domain-Driven Design principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison
//   - UnitOfMeasure: A unit code with its declared rounding precision
//   - Quantity: An immutable decimal value tagged with a unit of measure
//   - Money: An immutable decimal amount tagged with a currency
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
