package commands_test

import (
	"testing"

	"mes/internal/core/application/usecases/commands"
	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/reservation"
	"mes/internal/core/domain/model/stock"
	"mes/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAllocateMaterialCommandHandler_Handle_IssuesFromLedger(t *testing.T) {
	ctx := t.Context()
	componentID := kernel.NewUUID()
	aggregate := runningOrder(t, kernel.NewUUID(), "10")
	hold := activeHold(t, aggregate.ID(), componentID, "40")

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil)

	reservationRepo := new(MockReservationRepository)
	reservationRepo.On("GetActiveByOrder", ctx, aggregate.ID()).
		Return([]*reservation.MaterialReservation{hold}, nil)
	reservationRepo.On("Update", ctx, hold).Return(nil)

	ledgerRepo := new(MockLedgerRepository)
	ledgerRepo.On("GetLastEntry", ctx, componentID).Return(ledgerEntry(t, componentID, "100"), nil)
	ledgerRepo.On("Add", ctx, mock.AnythingOfType("*stock.Entry")).Return(nil)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("ReservationRepository").Return(reservationRepo)
	uow.On("LedgerRepository").Return(ledgerRepo)

	factory := new(MockMaterialUoWFactory)
	factory.On("Create").Return(uow)

	cmd, err := commands.NewAllocateMaterialCommand(
		aggregate.ID(), componentID, decimal.NewFromInt(15), "operator-7",
	)
	require.NoError(t, err)

	h := commands.NewAllocateMaterialCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.True(t, hold.ReservedQuantity().IsEqual(pcsQty(t, "25")))
	assert.True(t, hold.AllocatedQuantity().IsEqual(pcsQty(t, "15")))

	entry := ledgerRepo.Calls[len(ledgerRepo.Calls)-1].Arguments.Get(1).(*stock.Entry)
	assert.Equal(t, stock.TransactionProductionIssue, entry.Type())
	assert.True(t, entry.RunningBalance().IsEqual(pcsQty(t, "85")))
}

func TestAllocateMaterialCommandHandler_Handle_OverAllocationFails(t *testing.T) {
	ctx := t.Context()
	componentID := kernel.NewUUID()
	aggregate := runningOrder(t, kernel.NewUUID(), "10")
	hold := activeHold(t, aggregate.ID(), componentID, "40")

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil)

	reservationRepo := new(MockReservationRepository)
	reservationRepo.On("GetActiveByOrder", ctx, aggregate.ID()).
		Return([]*reservation.MaterialReservation{hold}, nil)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("ReservationRepository").Return(reservationRepo)

	factory := new(MockMaterialUoWFactory)
	factory.On("Create").Return(uow)

	cmd, err := commands.NewAllocateMaterialCommand(
		aggregate.ID(), componentID, decimal.NewFromInt(41), "operator-7",
	)
	require.NoError(t, err)

	h := commands.NewAllocateMaterialCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrValidation)
	assert.True(t, hold.ReservedQuantity().IsEqual(pcsQty(t, "40")))
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAllocateMaterialCommandHandler_Handle_OrderNotRunningFails(t *testing.T) {
	ctx := t.Context()
	aggregate := draftOrder(t, kernel.NewUUID(), "10")

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)

	factory := new(MockMaterialUoWFactory)
	factory.On("Create").Return(uow)

	cmd, err := commands.NewAllocateMaterialCommand(
		aggregate.ID(), kernel.NewUUID(), decimal.NewFromInt(1), "operator-7",
	)
	require.NoError(t, err)

	h := commands.NewAllocateMaterialCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrBusinessRuleViolation)
}
