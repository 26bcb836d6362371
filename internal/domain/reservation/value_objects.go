package reservation

import (
	"time"
)

// UsageWindowLead is how long before the slot a reservation may be
// marked used. There is no upper bound on how late usage is marked.
const UsageWindowLead = 10 * time.Minute

// SlotTime is a half-hour-aligned reservation timestamp.
type SlotTime struct {
	value time.Time
}

// NewSlotTime validates the requested slot against the current time:
// the slot must not be in the past and its minute component must sit on
// the half-hour grid. Seconds are not inspected, matching the booking
// form which only offers :00 and :30.
func NewSlotTime(t time.Time, now time.Time) (SlotTime, error) {
	if t.Before(now) {
		return SlotTime{}, ErrSlotInPast
	}
	if m := t.Minute(); m != 0 && m != 30 {
		return SlotTime{}, ErrSlotOffGrid
	}
	return SlotTime{value: t}, nil
}

// ReconstructSlotTime rebuilds a persisted slot without re-running the
// past-time check; stored reservations legitimately age past their slot.
func ReconstructSlotTime(t time.Time) SlotTime {
	return SlotTime{value: t}
}

func (s SlotTime) Value() time.Time {
	return s.value
}

// UsableAt reports whether the usage window is open: from ten minutes
// before the slot, onwards.
func (s SlotTime) UsableAt(now time.Time) bool {
	return !now.Before(s.value.Add(-UsageWindowLead))
}
