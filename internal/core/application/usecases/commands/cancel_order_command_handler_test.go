package commands_test

import (
	"testing"

	"mes/internal/core/application/usecases/commands"
	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/order"
	"mes/internal/core/domain/model/reservation"
	"mes/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_ReleasesHolds(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	aggregate := draftOrder(t, productID, "10")
	hold := activeHold(t, aggregate.ID(), kernel.NewUUID(), "40")

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil)
	orderRepo.On("Update", ctx, aggregate).Return(nil)

	reservationRepo := new(MockReservationRepository)
	reservationRepo.On("GetActiveByOrder", ctx, aggregate.ID()).
		Return([]*reservation.MaterialReservation{hold}, nil)
	reservationRepo.On("Update", ctx, hold).Return(nil)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("ReservationRepository").Return(reservationRepo)

	factory := new(MockCancelOrderUoWFactory)
	factory.On("Create").Return(uow)

	cmd, err := commands.NewCancelOrderCommand(aggregate.ID(), "material defect")
	require.NoError(t, err)

	h := commands.NewCancelOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.StatusCancelled, aggregate.Status())
	assert.Equal(t, "material defect", aggregate.CancellationReason())
	assert.False(t, hold.IsActive())
	assert.True(t, hold.ReservedQuantity().IsZero())
}

func TestCancelOrderCommandHandler_Handle_CompletedOrderFails(t *testing.T) {
	ctx := t.Context()
	aggregate := runningOrder(t, kernel.NewUUID(), "10")
	require.NoError(t, aggregate.Complete(aggregate.ActualStartDate().Add(1)))

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)

	factory := new(MockCancelOrderUoWFactory)
	factory.On("Create").Return(uow)

	cmd, err := commands.NewCancelOrderCommand(aggregate.ID(), "too late")
	require.NoError(t, err)

	h := commands.NewCancelOrderCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrInvalidStatusTransition)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
