package commands_test

import (
	"testing"
	"time"

	"mes/internal/core/application/usecases/commands"
	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleaseExpiredReservationsCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	now := time.Now()
	first := activeHold(t, kernel.NewUUID(), kernel.NewUUID(), "10")
	second := activeHold(t, kernel.NewUUID(), kernel.NewUUID(), "20")

	reservationRepo := new(MockReservationRepository)
	reservationRepo.On("GetExpired", ctx, now).
		Return([]*reservation.MaterialReservation{first, second}, nil)
	reservationRepo.On("Update", ctx, first).Return(nil)
	reservationRepo.On("Update", ctx, second).Return(nil)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("ReservationRepository").Return(reservationRepo)

	factory := new(MockReservationUoWFactory)
	factory.On("Create").Return(uow)

	cmd, err := commands.NewReleaseExpiredReservationsCommand(now)
	require.NoError(t, err)

	h := commands.NewReleaseExpiredReservationsCommandHandler(factory)
	released, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, released)
	assert.False(t, first.IsActive())
	assert.False(t, second.IsActive())
}
