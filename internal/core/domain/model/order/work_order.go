package order

import (
	"errors"
	"fmt"
	"time"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/errs"
)

// ErrWorkOrderIsNotConstructed is returned when a WorkOrder instance was
// not created through the NewWorkOrder factory.
var ErrWorkOrderIsNotConstructed = errors.New("WorkOrder must be created via NewWorkOrder constructor")

// WorkOrder is a child entity of ManufacturingOrder: one routing step
// executed on a work center. Work orders carry a sequence and a set of
// dependency ids; a work order may not start until every dependency is
// completed. Independent branches run concurrently; the dependency set
// is an ordering guard, not a serialization of the whole order.
type WorkOrder struct {
	id                kernel.UUID
	workCenterID      kernel.UUID
	sequence          int
	status            WorkOrderStatus
	estimatedDuration time.Duration
	actualDuration    time.Duration
	assignee          string
	dependencies      []kernel.UUID

	isConstructed bool
}

// NewWorkOrder creates a pending work order for a routing step.
func NewWorkOrder(
	id kernel.UUID,
	workCenterID kernel.UUID,
	estimatedDuration time.Duration,
	sequence int,
	dependencies []kernel.UUID,
) (*WorkOrder, error) {
	w := &WorkOrder{
		status:        WorkOrderStatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		w.setID(id),
		w.setWorkCenterID(workCenterID),
		w.setEstimatedDuration(estimatedDuration),
		w.setSequence(sequence),
		w.setDependencies(dependencies),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// RestoreWorkOrder reconstructs a work order from persistence.
func RestoreWorkOrder(
	id kernel.UUID,
	workCenterID kernel.UUID,
	estimatedDuration time.Duration,
	actualDuration time.Duration,
	sequence int,
	status WorkOrderStatus,
	assignee string,
	dependencies []kernel.UUID,
) (*WorkOrder, error) {
	w, err := NewWorkOrder(id, workCenterID, estimatedDuration, sequence, dependencies)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	w.status = status
	w.actualDuration = actualDuration
	w.assignee = assignee
	return w, nil
}

// Validate ensures the work order was created through a constructor.
func (w *WorkOrder) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWorkOrderIsNotConstructed
	}
	return nil
}

// ID returns the work order's unique identifier.
func (w *WorkOrder) ID() kernel.UUID {
	return w.id
}

// WorkCenterID returns the work center the step runs on.
func (w *WorkOrder) WorkCenterID() kernel.UUID {
	return w.workCenterID
}

// Sequence returns the step's position within the order routing.
func (w *WorkOrder) Sequence() int {
	return w.sequence
}

// Status returns the current work order status.
func (w *WorkOrder) Status() WorkOrderStatus {
	return w.status
}

// EstimatedDuration returns the planned duration from the BOM operation.
func (w *WorkOrder) EstimatedDuration() time.Duration {
	return w.estimatedDuration
}

// ActualDuration returns the recorded duration, zero until completion.
func (w *WorkOrder) ActualDuration() time.Duration {
	return w.actualDuration
}

// Assignee returns the operator assigned to the step, empty if none.
func (w *WorkOrder) Assignee() string {
	return w.assignee
}

// Dependencies returns the ids of work orders that must complete first.
func (w *WorkOrder) Dependencies() []kernel.UUID {
	return w.dependencies
}

// Assign sets the operator responsible for the step.
func (w *WorkOrder) Assign(assignee string) error {
	if assignee == "" {
		return errs.NewValidationError("work order assignee is required")
	}
	w.assignee = assignee
	return nil
}

// Start moves the step to in_progress. Dependency completion is checked
// by the owning ManufacturingOrder, which sees the sibling steps.
func (w *WorkOrder) Start() error {
	newStatus, err := w.status.Start()
	if err != nil {
		return err
	}
	w.status = newStatus
	return nil
}

// Pause halts a running step.
func (w *WorkOrder) Pause() error {
	newStatus, err := w.status.Pause()
	if err != nil {
		return err
	}
	w.status = newStatus
	return nil
}

// Resume continues a paused step.
func (w *WorkOrder) Resume() error {
	newStatus, err := w.status.Resume()
	if err != nil {
		return err
	}
	w.status = newStatus
	return nil
}

// Complete finishes the step and records the actual duration.
func (w *WorkOrder) Complete(actualDuration time.Duration) error {
	if actualDuration < 0 {
		return errs.NewValidationError("actual duration cannot be negative")
	}

	newStatus, err := w.status.Complete()
	if err != nil {
		return err
	}

	w.status = newStatus
	w.actualDuration = actualDuration
	return nil
}

// Cancel abandons the step from any non-terminal state.
func (w *WorkOrder) Cancel() error {
	newStatus, err := w.status.Cancel()
	if err != nil {
		return err
	}
	w.status = newStatus
	return nil
}

func (w *WorkOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *WorkOrder) setWorkCenterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.workCenterID = id
	return nil
}

func (w *WorkOrder) setEstimatedDuration(d time.Duration) error {
	if d <= 0 {
		return errs.NewValidationErrorWithCause(
			"work order estimated duration",
			fmt.Errorf("%s is not greater than 0", d),
		)
	}
	w.estimatedDuration = d
	return nil
}

func (w *WorkOrder) setSequence(seq int) error {
	if seq <= 0 {
		return errs.NewValidationErrorWithCause(
			"work order sequence",
			fmt.Errorf("%d is not greater than 0", seq),
		)
	}
	w.sequence = seq
	return nil
}

func (w *WorkOrder) setDependencies(dependencies []kernel.UUID) error {
	for _, dep := range dependencies {
		if err := dep.Validate(); err != nil {
			return err
		}
		if dep.IsEqual(w.id) {
			return errs.NewValidationError("a work order cannot depend on itself")
		}
	}
	w.dependencies = dependencies
	return nil
}
