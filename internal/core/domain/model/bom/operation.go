package bom

import (
	"errors"
	"fmt"
	"time"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/errs"
)

// ErrOperationIsNotConstructed is returned when an Operation instance was
// not created through the NewOperation factory.
var ErrOperationIsNotConstructed = errors.New("Operation must be created via NewOperation constructor")

// Operation is a routing step of a bill of materials: a work center and
// the estimated duration of the step. Work orders are instantiated from
// operations when a manufacturing order is confirmed.
type Operation struct {
	workCenterID kernel.UUID
	duration     time.Duration
	sequence     int

	isConstructed bool
}

// NewOperation creates a validated BOM operation.
func NewOperation(workCenterID kernel.UUID, duration time.Duration, sequence int) (*Operation, error) {
	o := &Operation{isConstructed: true}

	if err := errors.Join(
		o.setWorkCenterID(workCenterID),
		o.setDuration(duration),
		o.setSequence(sequence),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the operation was created through NewOperation.
func (o *Operation) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOperationIsNotConstructed
	}
	return nil
}

// WorkCenterID returns the work center the step runs on.
func (o *Operation) WorkCenterID() kernel.UUID {
	return o.workCenterID
}

// Duration returns the estimated duration of the step.
func (o *Operation) Duration() time.Duration {
	return o.duration
}

// Sequence returns the operation's position within the routing.
func (o *Operation) Sequence() int {
	return o.sequence
}

func (o *Operation) setWorkCenterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.workCenterID = id
	return nil
}

func (o *Operation) setDuration(d time.Duration) error {
	if d <= 0 {
		return errs.NewValidationErrorWithCause(
			"operation duration",
			fmt.Errorf("%s is not greater than 0", d),
		)
	}
	o.duration = d
	return nil
}

func (o *Operation) setSequence(seq int) error {
	if seq <= 0 {
		return errs.NewValidationErrorWithCause(
			"operation sequence",
			fmt.Errorf("%d is not greater than 0", seq),
		)
	}
	o.sequence = seq
	return nil
}
