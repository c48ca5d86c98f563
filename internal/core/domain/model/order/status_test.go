package order_test

import (
	"testing"

	"mes/internal/core/domain/model/order"
	"mes/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []order.Status {
	return []order.Status{
		order.StatusDraft,
		order.StatusConfirmed,
		order.StatusPlanned,
		order.StatusReleased,
		order.StatusInProgress,
		order.StatusPaused,
		order.StatusCompleted,
		order.StatusCancelled,
	}
}

func TestStatus_Transitions(t *testing.T) {
	transitions := []struct {
		name    string
		apply   func(order.Status) (order.Status, error)
		allowed map[order.Status]order.Status
	}{
		{
			name:  "confirm",
			apply: order.Status.Confirm,
			allowed: map[order.Status]order.Status{
				order.StatusDraft: order.StatusConfirmed,
			},
		},
		{
			name:  "plan",
			apply: order.Status.Plan,
			allowed: map[order.Status]order.Status{
				order.StatusConfirmed: order.StatusPlanned,
			},
		},
		{
			name:  "release",
			apply: order.Status.Release,
			allowed: map[order.Status]order.Status{
				order.StatusPlanned: order.StatusReleased,
			},
		},
		{
			name:  "start",
			apply: order.Status.Start,
			allowed: map[order.Status]order.Status{
				order.StatusConfirmed: order.StatusInProgress,
				order.StatusPlanned:   order.StatusInProgress,
				order.StatusReleased:  order.StatusInProgress,
			},
		},
		{
			name:  "pause",
			apply: order.Status.Pause,
			allowed: map[order.Status]order.Status{
				order.StatusInProgress: order.StatusPaused,
			},
		},
		{
			name:  "resume",
			apply: order.Status.Resume,
			allowed: map[order.Status]order.Status{
				order.StatusPaused: order.StatusInProgress,
			},
		},
		{
			name:  "complete",
			apply: order.Status.Complete,
			allowed: map[order.Status]order.Status{
				order.StatusInProgress: order.StatusCompleted,
			},
		},
		{
			name:  "cancel",
			apply: order.Status.Cancel,
			allowed: map[order.Status]order.Status{
				order.StatusDraft:      order.StatusCancelled,
				order.StatusConfirmed:  order.StatusCancelled,
				order.StatusPlanned:    order.StatusCancelled,
				order.StatusReleased:   order.StatusCancelled,
				order.StatusInProgress: order.StatusCancelled,
				order.StatusPaused:     order.StatusCancelled,
			},
		},
	}

	for _, tr := range transitions {
		t.Run(tr.name, func(t *testing.T) {
			for _, from := range allStatuses() {
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

func TestStatus_IsTerminal(t *testing.T) {
	for _, s := range allStatuses() {
		expected := s == order.StatusCompleted || s == order.StatusCancelled
		assert.Equal(t, expected, s.IsTerminal(), "status %s", s)
	}
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range allStatuses() {
		assert.NoError(t, s.Validate(), "status %s", s)
	}

	require.ErrorIs(t, order.StatusUnknown.Validate(), errs.ErrValidation)
	require.ErrorIs(t, order.Status(42).Validate(), errs.ErrValidation)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "draft", order.StatusDraft.String())
	assert.Equal(t, "in_progress", order.StatusInProgress.String())
	assert.Equal(t, "unknown", order.Status(42).String())
}
