package order

import (
	"mes/internal/pkg/errs"
)

// WorkOrderStatus represents the lifecycle state of a single routing step:
//
//	pending -> in_progress <-> paused
//	               |
//	               v
//	           completed
//
// cancelled is reachable from every non-terminal state.
type WorkOrderStatus int

const (
	// WorkOrderStatusUnknown represents an invalid or undefined status.
	WorkOrderStatusUnknown WorkOrderStatus = iota

	// WorkOrderStatusPending means the step has not started yet.
	WorkOrderStatusPending

	// WorkOrderStatusInProgress means the step is running on its work center.
	WorkOrderStatusInProgress

	// WorkOrderStatusPaused means the step is temporarily halted.
	WorkOrderStatusPaused

	// WorkOrderStatusCompleted is terminal: the step finished.
	WorkOrderStatusCompleted

	// WorkOrderStatusCancelled is terminal: the step was abandoned.
	WorkOrderStatusCancelled
)

const workOrderEntityType = "WorkOrder"

func getWorkOrderStatusStrings() map[WorkOrderStatus]string {
	return map[WorkOrderStatus]string{
		WorkOrderStatusUnknown:    "unknown",
		WorkOrderStatusPending:    "pending",
		WorkOrderStatusInProgress: "in_progress",
		WorkOrderStatusPaused:     "paused",
		WorkOrderStatusCompleted:  "completed",
		WorkOrderStatusCancelled:  "cancelled",
	}
}

// Validate checks that the status is one of the defined values.
func (s WorkOrderStatus) Validate() error {
	switch s {
	case WorkOrderStatusPending, WorkOrderStatusInProgress, WorkOrderStatusPaused,
		WorkOrderStatusCompleted, WorkOrderStatusCancelled:
		return nil
	default:
		return errs.NewValidationError("work order status is invalid")
	}
}

// String implements fmt.Stringer.
func (s WorkOrderStatus) String() string {
	if str, ok := getWorkOrderStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s WorkOrderStatus) IsTerminal() bool {
	return s == WorkOrderStatusCompleted || s == WorkOrderStatusCancelled
}

// Start transitions pending -> in_progress.
func (s WorkOrderStatus) Start() (WorkOrderStatus, error) {
	if s != WorkOrderStatusPending {
		return 0, s.transitionError(WorkOrderStatusInProgress)
	}
	return WorkOrderStatusInProgress, nil
}

// Pause transitions in_progress -> paused.
func (s WorkOrderStatus) Pause() (WorkOrderStatus, error) {
	if s != WorkOrderStatusInProgress {
		return 0, s.transitionError(WorkOrderStatusPaused)
	}
	return WorkOrderStatusPaused, nil
}

// Resume transitions paused -> in_progress.
func (s WorkOrderStatus) Resume() (WorkOrderStatus, error) {
	if s != WorkOrderStatusPaused {
		return 0, s.transitionError(WorkOrderStatusInProgress)
	}
	return WorkOrderStatusInProgress, nil
}

// Complete transitions in_progress -> completed.
func (s WorkOrderStatus) Complete() (WorkOrderStatus, error) {
	if s != WorkOrderStatusInProgress {
		return 0, s.transitionError(WorkOrderStatusCompleted)
	}
	return WorkOrderStatusCompleted, nil
}

// Cancel transitions any non-terminal status -> cancelled.
func (s WorkOrderStatus) Cancel() (WorkOrderStatus, error) {
	if s.IsTerminal() || s.Validate() != nil {
		return 0, s.transitionError(WorkOrderStatusCancelled)
	}
	return WorkOrderStatusCancelled, nil
}

func (s WorkOrderStatus) transitionError(target WorkOrderStatus) error {
	return errs.NewInvalidStatusTransitionError(workOrderEntityType, s.String(), target.String())
}
