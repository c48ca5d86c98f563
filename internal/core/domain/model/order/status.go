package order

import (
	"mes/internal/pkg/errs"
)

// Status represents the lifecycle state of a manufacturing order.
// It implements a state machine with defined transitions so orders follow
// the production workflow:
//
//	draft -> confirmed -> planned -> released -> in_progress <-> paused
//	                                                  |
//	                                                  v
//	                                              completed
//
// planned and released are optional depth: start is legal directly from
// confirmed. cancelled is reachable from every state except completed.
// completed and cancelled are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusDraft is the initial status of a newly created order.
	StatusDraft

	// StatusConfirmed means the BOM is bound and materials are reserved.
	StatusConfirmed

	// StatusPlanned means the order is scheduled.
	StatusPlanned

	// StatusReleased means the order is released to the shop floor.
	StatusReleased

	// StatusInProgress means production is running.
	StatusInProgress

	// StatusPaused means production is temporarily halted.
	StatusPaused

	// StatusCompleted is terminal: the order produced its goods.
	StatusCompleted

	// StatusCancelled is terminal: the order was abandoned.
	StatusCancelled
)

const statusEntityType = "ManufacturingOrder"

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "unknown",
		StatusDraft:      "draft",
		StatusConfirmed:  "confirmed",
		StatusPlanned:    "planned",
		StatusReleased:   "released",
		StatusInProgress: "in_progress",
		StatusPaused:     "paused",
		StatusCompleted:  "completed",
		StatusCancelled:  "cancelled",
	}
}

// Validate checks that the status is one of the defined values.
func (s Status) Validate() error {
	switch s {
	case StatusDraft, StatusConfirmed, StatusPlanned, StatusReleased,
		StatusInProgress, StatusPaused, StatusCompleted, StatusCancelled:
		return nil
	default:
		return errs.NewValidationError("manufacturing order status is invalid")
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Confirm transitions draft -> confirmed.
func (s Status) Confirm() (Status, error) {
	if s != StatusDraft {
		return 0, s.transitionError(StatusConfirmed)
	}
	return StatusConfirmed, nil
}

// Plan transitions confirmed -> planned.
func (s Status) Plan() (Status, error) {
	if s != StatusConfirmed {
		return 0, s.transitionError(StatusPlanned)
	}
	return StatusPlanned, nil
}

// Release transitions planned -> released.
func (s Status) Release() (Status, error) {
	if s != StatusPlanned {
		return 0, s.transitionError(StatusReleased)
	}
	return StatusReleased, nil
}

// Start transitions confirmed, planned or released -> in_progress.
// The workflow depth (whether plan/release happened first) is the
// caller's choice.
func (s Status) Start() (Status, error) {
	switch s {
	case StatusConfirmed, StatusPlanned, StatusReleased:
		return StatusInProgress, nil
	default:
		return 0, s.transitionError(StatusInProgress)
	}
}

// Pause transitions in_progress -> paused.
func (s Status) Pause() (Status, error) {
	if s != StatusInProgress {
		return 0, s.transitionError(StatusPaused)
	}
	return StatusPaused, nil
}

// Resume transitions paused -> in_progress.
func (s Status) Resume() (Status, error) {
	if s != StatusPaused {
		return 0, s.transitionError(StatusInProgress)
	}
	return StatusInProgress, nil
}

// Complete transitions in_progress -> completed.
func (s Status) Complete() (Status, error) {
	if s != StatusInProgress {
		return 0, s.transitionError(StatusCompleted)
	}
	return StatusCompleted, nil
}

// Cancel transitions any non-terminal status -> cancelled.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() || s.Validate() != nil {
		return 0, s.transitionError(StatusCancelled)
	}
	return StatusCancelled, nil
}

func (s Status) transitionError(target Status) error {
	return errs.NewInvalidStatusTransitionError(statusEntityType, s.String(), target.String())
}
