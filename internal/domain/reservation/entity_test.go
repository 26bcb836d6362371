//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"storeslot/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

func newApproved(t *testing.T, slot time.Time) *reservation.Reservation {
	t.Helper()
	res := reservation.ReconstructReservation(
		uuid.New(), uuid.New(), uuid.New(),
		reservation.ReconstructSlotTime(slot),
		reservation.StatusApproved,
		false, 1, base,
	)
	require.NotNil(t, res)
	return res
}

func TestNewReservation(t *testing.T) {
	cases := []struct {
		name  string
		at    time.Time
		errIs error
	}{
		{
			name: "future slot on the hour",
			at:   base.Add(time.Hour),
		},
		{
			name: "future slot on the half hour",
			at:   base.Add(90 * time.Minute),
		},
		{
			name: "slot equal to now is accepted",
			at:   base,
		},
		{
			name:  "slot in the past",
			at:    base.Add(-30 * time.Minute),
			errIs: reservation.ErrSlotInPast,
		},
		{
			name:  "slot one second in the past",
			at:    base.Add(-time.Second),
			errIs: reservation.ErrSlotInPast,
		},
		{
			name:  "slot off the half-hour grid",
			at:    base.Add(time.Hour + 15*time.Minute),
			errIs: reservation.ErrSlotOffGrid,
		},
		{
			name:  "slot one minute off the grid",
			at:    base.Add(time.Hour + time.Minute),
			errIs: reservation.ErrSlotOffGrid,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := reservation.NewReservation(uuid.New(), uuid.New(), tc.at, base)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, reservation.StatusPending, res.Status())
			assert.False(t, res.Used())
			assert.Equal(t, int32(1), res.Version())
		})
	}
}

func TestChangeStatus(t *testing.T) {
	all := []reservation.Status{
		reservation.StatusPending,
		reservation.StatusApproved,
		reservation.StatusRejected,
		reservation.StatusCompleted,
	}

	t.Run("every transition is allowed except approved to pending", func(t *testing.T) {
		for _, from := range all {
			for _, to := range all {
				res := reservation.ReconstructReservation(
					uuid.New(), uuid.New(), uuid.New(),
					reservation.ReconstructSlotTime(base.Add(time.Hour)),
					from, false, 1, base,
				)
				err := res.ChangeStatus(to)
				if from == reservation.StatusApproved && to == reservation.StatusPending {
					assert.ErrorIs(t, err, reservation.ErrStatusConflict, "%s -> %s", from, to)
					assert.Equal(t, from, res.Status(), "status must not change on conflict")
					continue
				}
				assert.NoError(t, err, "%s -> %s", from, to)
				assert.Equal(t, to, res.Status())
			}
		}
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		res := newApproved(t, base.Add(time.Hour))
		err := res.ChangeStatus(reservation.Status("CANCELLED"))
		assert.ErrorIs(t, err, reservation.ErrInvalidStatus)
	})
}

func TestMarkUsed(t *testing.T) {
	slot := base.Add(time.Hour) // 10:00

	t.Run("usable from ten minutes before the slot", func(t *testing.T) {
		res := newApproved(t, slot)
		err := res.MarkUsed(slot.Add(-8 * time.Minute)) // 09:52
		require.NoError(t, err)
		assert.True(t, res.Used())
		assert.Equal(t, reservation.StatusCompleted, res.Status())
	})

	t.Run("usable exactly at the window boundary", func(t *testing.T) {
		res := newApproved(t, slot)
		assert.NoError(t, res.MarkUsed(slot.Add(-reservation.UsageWindowLead)))
	})

	t.Run("usable after the slot has passed", func(t *testing.T) {
		res := newApproved(t, slot)
		assert.NoError(t, res.MarkUsed(slot.Add(2*time.Hour)))
	})

	t.Run("too early", func(t *testing.T) {
		res := newApproved(t, slot)
		err := res.MarkUsed(slot.Add(-11 * time.Minute)) // 09:49
		assert.ErrorIs(t, err, reservation.ErrUsageWindowClosed)
		assert.False(t, res.Used())
		assert.Equal(t, reservation.StatusApproved, res.Status())
	})

	t.Run("second use is rejected", func(t *testing.T) {
		res := newApproved(t, slot)
		require.NoError(t, res.MarkUsed(slot))
		err := res.MarkUsed(slot)
		assert.ErrorIs(t, err, reservation.ErrAlreadyUsed)
	})

	t.Run("pending reservation cannot be used", func(t *testing.T) {
		res := reservation.ReconstructReservation(
			uuid.New(), uuid.New(), uuid.New(),
			reservation.ReconstructSlotTime(slot),
			reservation.StatusPending, false, 1, base,
		)
		err := res.MarkUsed(slot)
		assert.ErrorIs(t, err, reservation.ErrNotApproved)
	})

	t.Run("rejected reservation cannot be used", func(t *testing.T) {
		res := reservation.ReconstructReservation(
			uuid.New(), uuid.New(), uuid.New(),
			reservation.ReconstructSlotTime(slot),
			reservation.StatusRejected, false, 1, base,
		)
		err := res.MarkUsed(slot)
		assert.ErrorIs(t, err, reservation.ErrNotApproved)
	})
}

func TestIsHeldBy(t *testing.T) {
	holderID := uuid.New()
	res, err := reservation.NewReservation(holderID, uuid.New(), base.Add(time.Hour), base)
	require.NoError(t, err)

	assert.True(t, res.IsHeldBy(holderID))
	assert.False(t, res.IsHeldBy(uuid.New()))
}
