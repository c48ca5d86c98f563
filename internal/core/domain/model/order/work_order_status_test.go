package order_test

import (
	"testing"

	"mes/internal/core/domain/model/order"
	"mes/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allWorkOrderStatuses() []order.WorkOrderStatus {
	return []order.WorkOrderStatus{
		order.WorkOrderStatusPending,
		order.WorkOrderStatusInProgress,
		order.WorkOrderStatusPaused,
		order.WorkOrderStatusCompleted,
		order.WorkOrderStatusCancelled,
	}
}

func TestWorkOrderStatus_Transitions(t *testing.T) {
	transitions := []struct {
		name    string
		apply   func(order.WorkOrderStatus) (order.WorkOrderStatus, error)
		allowed map[order.WorkOrderStatus]order.WorkOrderStatus
	}{
		{
			name:  "start",
			apply: order.WorkOrderStatus.Start,
			allowed: map[order.WorkOrderStatus]order.WorkOrderStatus{
				order.WorkOrderStatusPending: order.WorkOrderStatusInProgress,
			},
		},
		{
			name:  "pause",
			apply: order.WorkOrderStatus.Pause,
			allowed: map[order.WorkOrderStatus]order.WorkOrderStatus{
				order.WorkOrderStatusInProgress: order.WorkOrderStatusPaused,
			},
		},
		{
			name:  "resume",
			apply: order.WorkOrderStatus.Resume,
			allowed: map[order.WorkOrderStatus]order.WorkOrderStatus{
				order.WorkOrderStatusPaused: order.WorkOrderStatusInProgress,
			},
		},
		{
			name:  "complete",
			apply: order.WorkOrderStatus.Complete,
			allowed: map[order.WorkOrderStatus]order.WorkOrderStatus{
				order.WorkOrderStatusInProgress: order.WorkOrderStatusCompleted,
			},
		},
		{
			name:  "cancel",
			apply: order.WorkOrderStatus.Cancel,
			allowed: map[order.WorkOrderStatus]order.WorkOrderStatus{
				order.WorkOrderStatusPending:    order.WorkOrderStatusCancelled,
				order.WorkOrderStatusInProgress: order.WorkOrderStatusCancelled,
				order.WorkOrderStatusPaused:     order.WorkOrderStatusCancelled,
			},
		},
	}

	for _, tr := range transitions {
		t.Run(tr.name, func(t *testing.T) {
			for _, from := range allWorkOrderStatuses() {
				got, err := tr.apply(from)

				if target, ok := tr.allowed[from]; ok {
					require.NoError(t, err, "from %s", from)
					assert.Equal(t, target, got, "from %s", from)
				} else {
					require.ErrorIs(t, err, errs.ErrInvalidStatusTransition, "from %s", from)
				}
			}
		})
	}
}

func TestWorkOrderStatus_Validate(t *testing.T) {
	for _, s := range allWorkOrderStatuses() {
		assert.NoError(t, s.Validate(), "status %s", s)
	}

	require.ErrorIs(t, order.WorkOrderStatusUnknown.Validate(), errs.ErrValidation)
}

func TestWorkOrderStatus_String(t *testing.T) {
	assert.Equal(t, "pending", order.WorkOrderStatusPending.String())
	assert.Equal(t, "in_progress", order.WorkOrderStatusInProgress.String())
	assert.Equal(t, "unknown", order.WorkOrderStatus(42).String())
}
