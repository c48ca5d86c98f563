package cmd

import (
	"mes/internal/adapters/out/postgres"
	"mes/internal/core/application/usecases/commands"
	"mes/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	var f commands.ConfirmOrderUoWFactory = FuncConfirmOrderUoWFactory(func() commands.ConfirmOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmOrderCommandHandler(f)
}

func (c *CompositionRoot) CreatePlanOrderCommandHandler() commands.PlanOrderCommandHandler {
	return commands.NewPlanOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateReleaseOrderCommandHandler() commands.ReleaseOrderCommandHandler {
	return commands.NewReleaseOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateStartOrderCommandHandler() commands.StartOrderCommandHandler {
	return commands.NewStartOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreatePauseOrderCommandHandler() commands.PauseOrderCommandHandler {
	return commands.NewPauseOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateResumeOrderCommandHandler() commands.ResumeOrderCommandHandler {
	return commands.NewResumeOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.materialUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.CancelOrderUoWFactory = FuncCancelOrderUoWFactory(func() commands.CancelOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateStartWorkOrderCommandHandler() commands.StartWorkOrderCommandHandler {
	return commands.NewStartWorkOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreatePauseWorkOrderCommandHandler() commands.PauseWorkOrderCommandHandler {
	return commands.NewPauseWorkOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateResumeWorkOrderCommandHandler() commands.ResumeWorkOrderCommandHandler {
	return commands.NewResumeWorkOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteWorkOrderCommandHandler() commands.CompleteWorkOrderCommandHandler {
	return commands.NewCompleteWorkOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelWorkOrderCommandHandler() commands.CancelWorkOrderCommandHandler {
	return commands.NewCancelWorkOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAllocateMaterialCommandHandler() commands.AllocateMaterialCommandHandler {
	return commands.NewAllocateMaterialCommandHandler(c.materialUoWFactory())
}

func (c *CompositionRoot) CreateRecordStockEntryCommandHandler() commands.RecordStockEntryCommandHandler {
	var f commands.LedgerUoWFactory = FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordStockEntryCommandHandler(f)
}

func (c *CompositionRoot) CreateReleaseExpiredReservationsCommandHandler() commands.ReleaseExpiredReservationsCommandHandler {
	var f commands.ReservationUoWFactory = FuncReservationUoWFactory(func() commands.ReservationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReleaseExpiredReservationsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetStockBalanceQueryHandler() queries.GetStockBalanceQueryHandler {
	return queries.NewGetStockBalanceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLedgerHistoryQueryHandler() queries.GetLedgerHistoryQueryHandler {
	return queries.NewGetLedgerHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveReservationsQueryHandler() queries.GetActiveReservationsQueryHandler {
	return queries.NewGetActiveReservationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOpenOrdersQueryHandler() queries.GetOpenOrdersQueryHandler {
	return queries.NewGetOpenOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) materialUoWFactory() commands.MaterialUoWFactory {
	return FuncMaterialUoWFactory(func() commands.MaterialUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncConfirmOrderUoWFactory func() commands.ConfirmOrderUoW

func (f FuncConfirmOrderUoWFactory) Create() commands.ConfirmOrderUoW {
	return f()
}

type FuncMaterialUoWFactory func() commands.MaterialUoW

func (f FuncMaterialUoWFactory) Create() commands.MaterialUoW {
	return f()
}

type FuncCancelOrderUoWFactory func() commands.CancelOrderUoW

func (f FuncCancelOrderUoWFactory) Create() commands.CancelOrderUoW {
	return f()
}

type FuncLedgerUoWFactory func() commands.LedgerUoW

func (f FuncLedgerUoWFactory) Create() commands.LedgerUoW {
	return f()
}

type FuncReservationUoWFactory func() commands.ReservationUoW

func (f FuncReservationUoWFactory) Create() commands.ReservationUoW {
	return f()
}
