package order

import (
	"errors"
	"fmt"
	"time"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when a ManufacturingOrder instance
// was not created through a constructor.
var ErrOrderIsNotConstructed = errors.New("ManufacturingOrder must be created via NewManufacturingOrder constructor")

// ManufacturingOrder is the aggregate root governing a production run:
// which product to make, in what quantity, against which BOM, and where
// the run stands in its lifecycle. It owns the work orders instantiated
// from the BOM routing.
//
// Invariants:
//   - the BOM is bound exactly once, at confirmation; later BOM edits do
//     not retroactively affect an in-flight order
//   - status transitions follow the Status state machine; every guard
//     passes before any field is mutated
//   - completion requires all work orders terminal with at least one
//     completed
type ManufacturingOrder struct {
	id                 kernel.UUID
	number             string
	productID          kernel.UUID
	bomID              *kernel.UUID
	quantity           kernel.Quantity
	status             Status
	priority           int
	plannedStartDate   *time.Time
	plannedEndDate     *time.Time
	actualStartDate    *time.Time
	actualEndDate      *time.Time
	createdBy          string
	assignee           string
	notes              string
	cancellationReason string
	workOrders         []*WorkOrder
	version            int

	isConstructed bool
}

// NewManufacturingOrder creates an order in draft status.
func NewManufacturingOrder(
	id kernel.UUID,
	number string,
	productID kernel.UUID,
	quantity kernel.Quantity,
	priority int,
	createdBy string,
) (*ManufacturingOrder, error) {
	o := &ManufacturingOrder{
		status:        StatusDraft,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setProductID(productID),
		o.setQuantity(quantity),
		o.setPriority(priority),
		o.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreManufacturingOrder reconstructs an order from persistence.
func RestoreManufacturingOrder(
	id kernel.UUID,
	number string,
	productID kernel.UUID,
	bomID *kernel.UUID,
	quantity kernel.Quantity,
	status Status,
	priority int,
	plannedStartDate *time.Time,
	plannedEndDate *time.Time,
	actualStartDate *time.Time,
	actualEndDate *time.Time,
	createdBy string,
	assignee string,
	notes string,
	cancellationReason string,
	workOrders []*WorkOrder,
	version int,
) (*ManufacturingOrder, error) {
	o, err := NewManufacturingOrder(id, number, productID, quantity, priority, createdBy)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if bomID != nil {
		if err := bomID.Validate(); err != nil {
			return nil, err
		}
	}
	for _, w := range workOrders {
		if err := w.Validate(); err != nil {
			return nil, err
		}
	}

	o.bomID = bomID
	o.status = status
	o.plannedStartDate = plannedStartDate
	o.plannedEndDate = plannedEndDate
	o.actualStartDate = actualStartDate
	o.actualEndDate = actualEndDate
	o.assignee = assignee
	o.notes = notes
	o.cancellationReason = cancellationReason
	o.workOrders = workOrders
	o.version = version
	return o, nil
}

// Validate ensures the order was created through a constructor.
func (o *ManufacturingOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *ManufacturingOrder) IsEqual(other *ManufacturingOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *ManufacturingOrder) ID() kernel.UUID {
	return o.id
}

// Number returns the unique order reference number.
func (o *ManufacturingOrder) Number() string {
	return o.number
}

// ProductID returns the target product.
func (o *ManufacturingOrder) ProductID() kernel.UUID {
	return o.productID
}

// BOMID returns the bound BOM, nil before confirmation.
func (o *ManufacturingOrder) BOMID() *kernel.UUID {
	return o.bomID
}

// Quantity returns the requested output quantity.
func (o *ManufacturingOrder) Quantity() kernel.Quantity {
	return o.quantity
}

// Status returns the current lifecycle status.
func (o *ManufacturingOrder) Status() Status {
	return o.status
}

// Priority returns the scheduling priority; higher runs first.
func (o *ManufacturingOrder) Priority() int {
	return o.priority
}

// PlannedStartDate returns the planned start, nil if unscheduled.
func (o *ManufacturingOrder) PlannedStartDate() *time.Time {
	return o.plannedStartDate
}

// PlannedEndDate returns the planned end, nil if unscheduled.
func (o *ManufacturingOrder) PlannedEndDate() *time.Time {
	return o.plannedEndDate
}

// ActualStartDate returns the recorded start, nil until started.
func (o *ManufacturingOrder) ActualStartDate() *time.Time {
	return o.actualStartDate
}

// ActualEndDate returns the recorded end, nil until completed.
func (o *ManufacturingOrder) ActualEndDate() *time.Time {
	return o.actualEndDate
}

// CreatedBy returns the user who created the order.
func (o *ManufacturingOrder) CreatedBy() string {
	return o.createdBy
}

// Assignee returns the responsible user, empty if unassigned.
func (o *ManufacturingOrder) Assignee() string {
	return o.assignee
}

// Notes returns free-form order notes.
func (o *ManufacturingOrder) Notes() string {
	return o.notes
}

// CancellationReason returns the reason recorded on cancel.
func (o *ManufacturingOrder) CancellationReason() string {
	return o.cancellationReason
}

// WorkOrders returns the owned routing steps.
func (o *ManufacturingOrder) WorkOrders() []*WorkOrder {
	return o.workOrders
}

// Version returns the optimistic concurrency version.
func (o *ManufacturingOrder) Version() int {
	return o.version
}

// Assign sets the responsible user.
func (o *ManufacturingOrder) Assign(assignee string) error {
	if assignee == "" {
		return errs.NewValidationError("order assignee is required")
	}
	o.assignee = assignee
	return nil
}

// SetNotes replaces the order notes.
func (o *ManufacturingOrder) SetNotes(notes string) {
	o.notes = notes
}

// Schedule records the planned window.
func (o *ManufacturingOrder) Schedule(start, end time.Time) error {
	if end.Before(start) {
		return errs.NewValidationError("planned end cannot precede planned start")
	}
	o.plannedStartDate = &start
	o.plannedEndDate = &end
	return nil
}

// Confirm binds the BOM and attaches the work orders instantiated from
// its routing. Material reservation happens in the same logical unit but
// outside the aggregate; on any failure the caller discards the mutation,
// so a failed confirmation leaves the persisted order in draft.
func (o *ManufacturingOrder) Confirm(bomID kernel.UUID, workOrders []*WorkOrder) error {
	if err := bomID.Validate(); err != nil {
		return err
	}
	if o.bomID != nil && !o.bomID.IsEqual(bomID) {
		return errs.NewBusinessRuleViolationError("an order keeps its BOM binding for its whole lifetime")
	}
	for _, w := range workOrders {
		if err := w.Validate(); err != nil {
			return err
		}
	}

	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.bomID = &bomID
	o.workOrders = workOrders
	return nil
}

// Plan transitions the order to planned.
func (o *ManufacturingOrder) Plan() error {
	newStatus, err := o.status.Plan()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Release transitions the order to released.
func (o *ManufacturingOrder) Release() error {
	newStatus, err := o.status.Release()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Start begins production and records the actual start time. At least one
// runnable work order must exist.
func (o *ManufacturingOrder) Start(now time.Time) error {
	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	runnable := false
	for _, w := range o.workOrders {
		if !w.Status().IsTerminal() {
			runnable = true
			break
		}
	}
	if !runnable {
		return errs.NewBusinessRuleViolationError("an order needs at least one runnable work order to start")
	}

	o.status = newStatus
	o.actualStartDate = &now
	return nil
}

// Pause halts a running order.
func (o *ManufacturingOrder) Pause() error {
	newStatus, err := o.status.Pause()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Resume continues a paused order.
func (o *ManufacturingOrder) Resume() error {
	newStatus, err := o.status.Resume()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Complete finishes the order and records the actual end time. All work
// orders must be terminal and at least one must have completed; ledger
// and reservation side effects are coordinated by the caller in the same
// logical unit.
func (o *ManufacturingOrder) Complete(now time.Time) error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	completed := 0
	for _, w := range o.workOrders {
		if !w.Status().IsTerminal() {
			return errs.NewBusinessRuleViolationError("all work orders must be terminal before the order completes")
		}
		if w.Status() == WorkOrderStatusCompleted {
			completed++
		}
	}
	if completed == 0 {
		return errs.NewBusinessRuleViolationError("an order needs at least one completed work order to complete")
	}

	o.status = newStatus
	o.actualEndDate = &now
	return nil
}

// Cancel abandons the order from any non-terminal state. A non-empty
// reason is required; open work orders are cancelled along with the order.
func (o *ManufacturingOrder) Cancel(reason string) error {
	if reason == "" {
		return errs.NewValidationError("cancellation reason is required")
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	for _, w := range o.workOrders {
		if !w.Status().IsTerminal() {
			if cancelErr := w.Cancel(); cancelErr != nil {
				return cancelErr
			}
		}
	}

	o.status = newStatus
	o.cancellationReason = reason
	return nil
}

// StartWorkOrder starts the identified step after verifying that every
// dependency has completed. Steps without mutual dependencies may run
// concurrently.
func (o *ManufacturingOrder) StartWorkOrder(workOrderID kernel.UUID) error {
	w, err := o.findWorkOrder(workOrderID)
	if err != nil {
		return err
	}

	for _, depID := range w.Dependencies() {
		dep, depErr := o.findWorkOrder(depID)
		if depErr != nil {
			return depErr
		}
		if dep.Status() != WorkOrderStatusCompleted {
			return errs.NewBusinessRuleViolationErrorWithCause(
				"work order dependencies must be completed before start",
				fmt.Errorf("dependency %s is %s", dep.ID(), dep.Status()),
			)
		}
	}

	return w.Start()
}

// PauseWorkOrder pauses the identified step.
func (o *ManufacturingOrder) PauseWorkOrder(workOrderID kernel.UUID) error {
	w, err := o.findWorkOrder(workOrderID)
	if err != nil {
		return err
	}
	return w.Pause()
}

// ResumeWorkOrder resumes the identified step.
func (o *ManufacturingOrder) ResumeWorkOrder(workOrderID kernel.UUID) error {
	w, err := o.findWorkOrder(workOrderID)
	if err != nil {
		return err
	}
	return w.Resume()
}

// CompleteWorkOrder completes the identified step with its actual duration.
func (o *ManufacturingOrder) CompleteWorkOrder(workOrderID kernel.UUID, actualDuration time.Duration) error {
	w, err := o.findWorkOrder(workOrderID)
	if err != nil {
		return err
	}
	return w.Complete(actualDuration)
}

// CancelWorkOrder cancels the identified step.
func (o *ManufacturingOrder) CancelWorkOrder(workOrderID kernel.UUID) error {
	w, err := o.findWorkOrder(workOrderID)
	if err != nil {
		return err
	}
	return w.Cancel()
}

func (o *ManufacturingOrder) findWorkOrder(id kernel.UUID) (*WorkOrder, error) {
	for _, w := range o.workOrders {
		if w.ID().IsEqual(id) {
			return w, nil
		}
	}
	return nil, errs.NewEntityNotFoundError("work order", id.String())
}

func (o *ManufacturingOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *ManufacturingOrder) setNumber(number string) error {
	if number == "" {
		return errs.NewValidationError("order number is required")
	}
	o.number = number
	return nil
}

func (o *ManufacturingOrder) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.productID = id
	return nil
}

func (o *ManufacturingOrder) setQuantity(q kernel.Quantity) error {
	if err := q.Validate(); err != nil {
		return err
	}
	if !q.IsPositive() {
		return errs.NewValidationErrorWithCause(
			"order quantity",
			fmt.Errorf("%s is not greater than 0", q.Value()),
		)
	}
	o.quantity = q
	return nil
}

func (o *ManufacturingOrder) setPriority(priority int) error {
	if priority < 0 {
		return errs.NewValidationError("order priority cannot be negative")
	}
	o.priority = priority
	return nil
}

func (o *ManufacturingOrder) setCreatedBy(createdBy string) error {
	if createdBy == "" {
		return errs.NewValidationError("order creator is required")
	}
	o.createdBy = createdBy
	return nil
}
