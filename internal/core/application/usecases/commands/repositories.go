// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"mes/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// BOMRepoFactory provides access to the BOM repository within a transaction.
	BOMRepoFactory interface {
		BOMRepository() ports.BOMRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ReservationRepoFactory provides access to the reservation repository within a transaction.
	ReservationRepoFactory interface {
		ReservationRepository() ports.ReservationRepository
	}

	// LedgerRepoFactory provides access to the stock ledger repository within a transaction.
	LedgerRepoFactory interface {
		LedgerRepository() ports.LedgerRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by plain status transitions that touch no other aggregate.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CreateOrderUoW manages transactions for order creation, which reads
	// the product catalog to resolve the order quantity's unit.
	CreateOrderUoW interface {
		TxManager
		ProductRepoFactory
		OrderRepoFactory
	}

	// CreateOrderUoWFactory creates new order-creation unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// ConfirmOrderUoW manages transactions for order confirmation: binding
	// the BOM, checking stock availability and creating reservation holds.
	ConfirmOrderUoW interface {
		TxManager
		OrderRepoFactory
		BOMRepoFactory
		ReservationRepoFactory
		LedgerRepoFactory
	}

	// ConfirmOrderUoWFactory creates new confirmation unit of work instances.
	ConfirmOrderUoWFactory interface {
		Create() ConfirmOrderUoW
	}

	// MaterialUoW manages transactions that move material: allocation and
	// order completion write ledger entries against reservation holds.
	MaterialUoW interface {
		TxManager
		OrderRepoFactory
		ReservationRepoFactory
		LedgerRepoFactory
	}

	// MaterialUoWFactory creates new material unit of work instances.
	MaterialUoWFactory interface {
		Create() MaterialUoW
	}

	// CancelOrderUoW manages transactions for order cancellation, which
	// releases the order's reservation holds.
	CancelOrderUoW interface {
		TxManager
		OrderRepoFactory
		ReservationRepoFactory
	}

	// CancelOrderUoWFactory creates new cancellation unit of work instances.
	CancelOrderUoWFactory interface {
		Create() CancelOrderUoW
	}

	// LedgerUoW manages transactions for direct stock movements, which
	// validate the product before appending to the ledger.
	LedgerUoW interface {
		TxManager
		ProductRepoFactory
		LedgerRepoFactory
	}

	// LedgerUoWFactory creates new ledger unit of work instances.
	LedgerUoWFactory interface {
		Create() LedgerUoW
	}

	// ReservationUoW manages transactions for reservation maintenance.
	ReservationUoW interface {
		TxManager
		ReservationRepoFactory
	}

	// ReservationUoWFactory creates new reservation unit of work instances.
	ReservationUoWFactory interface {
		Create() ReservationUoW
	}
)
