// Package services provides domain services that orchestrate business
// operations across multiple aggregates of the manufacturing domain. It
// implements workflows that don't naturally belong to a single aggregate
// root.
//
// The package includes:
//   - StockReserver: a domain service that converts exploded material
//     requirements into all-or-nothing reservation holds.
//
// Domain services coordinate between aggregates, implementing business
// logic that spans multiple bounded contexts following Domain-Driven
// Design principles.
package services
