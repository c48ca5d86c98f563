package commands

import (
	"context"
)

// ReleaseExpiredReservationsCommandHandler releases active holds whose
// expiry has passed, freeing the quantities for other orders.
type ReleaseExpiredReservationsCommandHandler struct {
	uowFactory ReservationUoWFactory
}

// NewReleaseExpiredReservationsCommandHandler creates a handler for
// reservation expiry.
func NewReleaseExpiredReservationsCommandHandler(
	uowFactory ReservationUoWFactory,
) ReleaseExpiredReservationsCommandHandler {
	return ReleaseExpiredReservationsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the expiry command and returns how many holds were
// released.
func (h ReleaseExpiredReservationsCommandHandler) Handle(
	ctx context.Context,
	cmd ReleaseExpiredReservationsCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reservationRepo := uow.ReservationRepository()
	expired, err := reservationRepo.GetExpired(ctx, cmd.Now())
	if err != nil {
		return 0, err
	}

	for _, hold := range expired {
		hold.Release()
		if err = reservationRepo.Update(ctx, hold); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(expired), nil
}
