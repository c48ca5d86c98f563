package order_test

import (
	"testing"
	"time"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/order"
	"mes/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderQuantity(t *testing.T, value string) kernel.Quantity {
	t.Helper()
	unit, err := kernel.NewUnitOfMeasure("pcs")
	require.NoError(t, err)
	q, err := kernel.NewQuantityFromString(value, unit)
	require.NoError(t, err)
	return q
}

func newDraftOrder(t *testing.T) *order.ManufacturingOrder {
	t.Helper()
	o, err := order.NewManufacturingOrder(
		kernel.NewUUID(), "MO-2026-0001", kernel.NewUUID(), orderQuantity(t, "10"), 5, "planner",
	)
	require.NoError(t, err)
	return o
}

func confirmedOrder(t *testing.T, workOrders ...*order.WorkOrder) *order.ManufacturingOrder {
	t.Helper()
	o := newDraftOrder(t)
	if len(workOrders) == 0 {
		workOrders = []*order.WorkOrder{newWorkOrder(t)}
	}
	require.NoError(t, o.Confirm(kernel.NewUUID(), workOrders))
	return o
}

func TestNewManufacturingOrder(t *testing.T) {
	t.Run("creates_draft_order", func(t *testing.T) {
		o := newDraftOrder(t)

		assert.Equal(t, order.StatusDraft, o.Status())
		assert.Nil(t, o.BOMID())
		assert.Empty(t, o.WorkOrders())
		assert.Equal(t, "planner", o.CreatedBy())
	})

	t.Run("rejects_invalid_arguments", func(t *testing.T) {
		_, err := order.NewManufacturingOrder(
			kernel.UUID{}, "", kernel.NewUUID(), orderQuantity(t, "0"), -1, "",
		)

		require.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestManufacturingOrder_Confirm(t *testing.T) {
	t.Run("binds_bom_and_attaches_work_orders", func(t *testing.T) {
		o := newDraftOrder(t)
		bomID := kernel.NewUUID()
		steps := []*order.WorkOrder{newWorkOrder(t), newWorkOrder(t)}

		require.NoError(t, o.Confirm(bomID, steps))

		assert.Equal(t, order.StatusConfirmed, o.Status())
		require.NotNil(t, o.BOMID())
		assert.True(t, o.BOMID().IsEqual(bomID))
		assert.Len(t, o.WorkOrders(), 2)
	})

	t.Run("confirming_twice_fails", func(t *testing.T) {
		o := confirmedOrder(t)

		err := o.Confirm(kernel.NewUUID(), []*order.WorkOrder{newWorkOrder(t)})

		require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
	})
}

func TestManufacturingOrder_Start(t *testing.T) {
	now := time.Now()

	t.Run("start_from_confirmed_records_actual_start", func(t *testing.T) {
		o := confirmedOrder(t)

		require.NoError(t, o.Start(now))

		assert.Equal(t, order.StatusInProgress, o.Status())
		require.NotNil(t, o.ActualStartDate())
		assert.Equal(t, now, *o.ActualStartDate())
	})

	t.Run("start_through_full_workflow_depth", func(t *testing.T) {
		o := confirmedOrder(t)

		require.NoError(t, o.Plan())
		require.NoError(t, o.Release())
		require.NoError(t, o.Start(now))

		assert.Equal(t, order.StatusInProgress, o.Status())
	})

	t.Run("start_from_draft_fails", func(t *testing.T) {
		o := newDraftOrder(t)

		require.ErrorIs(t, o.Start(now), errs.ErrInvalidStatusTransition)
	})

	t.Run("start_without_runnable_work_orders_fails", func(t *testing.T) {
		w := newWorkOrder(t)
		o := confirmedOrder(t, w)
		require.NoError(t, w.Cancel())

		require.ErrorIs(t, o.Start(now), errs.ErrBusinessRuleViolation)
		assert.Equal(t, order.StatusConfirmed, o.Status())
	})
}

func TestManufacturingOrder_Complete(t *testing.T) {
	now := time.Now()

	t.Run("complete_records_actual_end", func(t *testing.T) {
		w := newWorkOrder(t)
		o := confirmedOrder(t, w)
		require.NoError(t, o.Start(now))
		require.NoError(t, o.StartWorkOrder(w.ID()))
		require.NoError(t, o.CompleteWorkOrder(w.ID(), time.Hour))

		require.NoError(t, o.Complete(now))

		assert.Equal(t, order.StatusCompleted, o.Status())
		require.NotNil(t, o.ActualEndDate())
	})

	t.Run("complete_with_open_work_order_fails", func(t *testing.T) {
		w := newWorkOrder(t)
		o := confirmedOrder(t, w)
		require.NoError(t, o.Start(now))

		require.ErrorIs(t, o.Complete(now), errs.ErrBusinessRuleViolation)
		assert.Equal(t, order.StatusInProgress, o.Status())
	})

	t.Run("complete_with_all_steps_cancelled_fails", func(t *testing.T) {
		w := newWorkOrder(t)
		o := confirmedOrder(t, w)
		require.NoError(t, o.Start(now))
		require.NoError(t, o.CancelWorkOrder(w.ID()))

		require.ErrorIs(t, o.Complete(now), errs.ErrBusinessRuleViolation)
	})
}

func TestManufacturingOrder_Cancel(t *testing.T) {
	t.Run("cancels_open_work_orders_and_records_reason", func(t *testing.T) {
		w := newWorkOrder(t)
		o := confirmedOrder(t, w)

		require.NoError(t, o.Cancel("customer withdrew the order"))

		assert.Equal(t, order.StatusCancelled, o.Status())
		assert.Equal(t, "customer withdrew the order", o.CancellationReason())
		assert.Equal(t, order.WorkOrderStatusCancelled, w.Status())
	})

	t.Run("keeps_completed_work_orders_untouched", func(t *testing.T) {
		w := newWorkOrder(t)
		o := confirmedOrder(t, w)
		require.NoError(t, o.Start(time.Now()))
		require.NoError(t, o.StartWorkOrder(w.ID()))
		require.NoError(t, o.CompleteWorkOrder(w.ID(), time.Hour))

		require.NoError(t, o.Cancel("material defect found"))

		assert.Equal(t, order.WorkOrderStatusCompleted, w.Status())
	})

	t.Run("requires_a_reason", func(t *testing.T) {
		o := newDraftOrder(t)

		require.ErrorIs(t, o.Cancel(""), errs.ErrValidation)
		assert.Equal(t, order.StatusDraft, o.Status())
	})

	t.Run("completed_order_cannot_be_cancelled", func(t *testing.T) {
		w := newWorkOrder(t)
		o := confirmedOrder(t, w)
		require.NoError(t, o.Start(time.Now()))
		require.NoError(t, o.StartWorkOrder(w.ID()))
		require.NoError(t, o.CompleteWorkOrder(w.ID(), time.Hour))
		require.NoError(t, o.Complete(time.Now()))

		require.ErrorIs(t, o.Cancel("too late"), errs.ErrInvalidStatusTransition)
	})
}

func TestManufacturingOrder_WorkOrderDependencies(t *testing.T) {
	now := time.Now()

	t.Run("dependent_step_waits_for_its_dependency", func(t *testing.T) {
		first := newWorkOrder(t)
		second, err := order.NewWorkOrder(
			kernel.NewUUID(), kernel.NewUUID(), time.Hour, 2, []kernel.UUID{first.ID()},
		)
		require.NoError(t, err)
		o := confirmedOrder(t, first, second)
		require.NoError(t, o.Start(now))

		require.ErrorIs(t, o.StartWorkOrder(second.ID()), errs.ErrBusinessRuleViolation)

		require.NoError(t, o.StartWorkOrder(first.ID()))
		require.NoError(t, o.CompleteWorkOrder(first.ID(), time.Hour))
		require.NoError(t, o.StartWorkOrder(second.ID()))
	})

	t.Run("independent_steps_run_concurrently", func(t *testing.T) {
		first := newWorkOrder(t)
		second := newWorkOrder(t)
		o := confirmedOrder(t, first, second)
		require.NoError(t, o.Start(now))

		require.NoError(t, o.StartWorkOrder(first.ID()))
		require.NoError(t, o.StartWorkOrder(second.ID()))
	})

	t.Run("unknown_work_order_id_fails", func(t *testing.T) {
		o := confirmedOrder(t)
		require.NoError(t, o.Start(now))

		require.ErrorIs(t, o.StartWorkOrder(kernel.NewUUID()), errs.ErrEntityNotFound)
	})
}

func TestManufacturingOrder_Schedule(t *testing.T) {
	o := newDraftOrder(t)
	start := time.Now()

	require.NoError(t, o.Schedule(start, start.Add(48*time.Hour)))
	require.NotNil(t, o.PlannedStartDate())
	require.NotNil(t, o.PlannedEndDate())

	require.ErrorIs(t, o.Schedule(start, start.Add(-time.Hour)), errs.ErrValidation)
}

func TestRestoreManufacturingOrder(t *testing.T) {
	bomID := kernel.NewUUID()
	w := newWorkOrder(t)

	o, err := order.RestoreManufacturingOrder(
		kernel.NewUUID(), "MO-2026-0042", kernel.NewUUID(), &bomID, orderQuantity(t, "10"),
		order.StatusInProgress, 5, nil, nil, nil, nil,
		"planner", "operator-7", "rush job", "", []*order.WorkOrder{w}, 3,
	)
	require.NoError(t, err)

	assert.Equal(t, order.StatusInProgress, o.Status())
	assert.Equal(t, 3, o.Version())
	assert.Equal(t, "operator-7", o.Assignee())
	assert.Len(t, o.WorkOrders(), 1)
}
