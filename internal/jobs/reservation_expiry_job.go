package jobs

import (
	"context"
	"log/slog"
	"time"

	"mes/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ReservationExpiryJob releases material reservations whose expiry has
// passed, returning their soft-held stock to the available pool. Runs every
// minute; expiry precision finer than that is not needed for TTLs measured
// in hours.
type ReservationExpiryJob struct {
	handler commands.ReleaseExpiredReservationsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewReservationExpiryJob creates a new job for releasing lapsed holds.
func NewReservationExpiryJob(
	handler commands.ReleaseExpiredReservationsCommandHandler,
	logger *slog.Logger,
) *ReservationExpiryJob {
	return &ReservationExpiryJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "reservation_expiry_job"),
	}
}

// Start begins the reservation expiry job to run every minute.
func (j *ReservationExpiryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewReleaseExpiredReservationsCommand(time.Now())
		if err != nil {
			j.logger.ErrorContext(ctx, "Reservation expiry job misconfigured", "error", err)
			return
		}

		released, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Reservation expiry job failed", "error", err)
			return
		}

		if released > 0 {
			j.logger.InfoContext(ctx, "Released expired reservations", "count", released)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reservation expiry job started (running every minute)")
	return nil
}

// Stop stops the reservation expiry job.
func (j *ReservationExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reservation expiry job stopped")
}
