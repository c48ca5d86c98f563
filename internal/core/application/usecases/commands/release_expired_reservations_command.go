package commands

import (
	"errors"
	"time"

	"mes/internal/pkg/guard"
)

var ErrReleaseExpiredReservationsCommandIsNotConstructed = errors.New(
	"ReleaseExpiredReservationsCommand must be created via NewReleaseExpiredReservationsCommand constructor",
)

// ReleaseExpiredReservationsCommand represents a request to release every
// active reservation whose expiry has passed. Issued by the expiry job.
type ReleaseExpiredReservationsCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewReleaseExpiredReservationsCommand creates a command to release lapsed holds.
func NewReleaseExpiredReservationsCommand(now time.Time) (ReleaseExpiredReservationsCommand, error) {
	if now.IsZero() {
		return ReleaseExpiredReservationsCommand{}, errors.New("reference time is required")
	}

	return ReleaseExpiredReservationsCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReleaseExpiredReservationsCommand) Validate() error {
	return c.guard.Validate(ErrReleaseExpiredReservationsCommandIsNotConstructed)
}

// Now returns the reference time expiry is judged against.
func (c ReleaseExpiredReservationsCommand) Now() time.Time {
	return c.now
}
