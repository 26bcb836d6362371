package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSlotInPast        = errors.New("reservation time is in the past")
	ErrSlotOffGrid       = errors.New("reservation time must be on a half-hour boundary")
	ErrInvalidStatus     = errors.New("invalid reservation status")
	ErrStatusConflict    = errors.New("approved reservation cannot revert to pending")
	ErrAlreadyUsed       = errors.New("reservation already used")
	ErrNotApproved       = errors.New("reservation is not approved")
	ErrUsageWindowClosed = errors.New("reservation can only be used from 10 minutes before the slot")
)

// Reservation is one user's claim on a store time slot. Status and the
// used flag are mutated only through ChangeStatus and MarkUsed, which
// together maintain the invariant used == true <=> status == COMPLETED.
type Reservation struct {
	id        uuid.UUID
	userID    uuid.UUID
	storeID   uuid.UUID
	slot      SlotTime
	status    Status
	used      bool
	version   int32
	createdAt time.Time
}

func NewReservation(userID, storeID uuid.UUID, at time.Time, now time.Time) (*Reservation, error) {
	slot, err := NewSlotTime(at, now)
	if err != nil {
		return nil, err
	}

	return &Reservation{
		id:      uuid.New(),
		userID:  userID,
		storeID: storeID,
		slot:    slot,
		status:  StatusPending,
		used:    false,
		version: 1,
	}, nil
}

func ReconstructReservation(
	id, userID, storeID uuid.UUID,
	slot SlotTime,
	status Status,
	used bool,
	version int32,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		userID:    userID,
		storeID:   storeID,
		slot:      slot,
		status:    status,
		used:      used,
		version:   version,
		createdAt: createdAt,
	}
}

// ChangeStatus applies the permissive transition table. The single
// forbidden edge is APPROVED -> PENDING.
func (r *Reservation) ChangeStatus(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !r.status.CanTransitionTo(next) {
		return ErrStatusConflict
	}
	r.status = next
	return nil
}

// MarkUsed flips the used flag and completes the reservation in one
// step; it is the only intended path to COMPLETED. The reservation must
// be approved, unused, and inside the usage window.
func (r *Reservation) MarkUsed(now time.Time) error {
	if r.used {
		return ErrAlreadyUsed
	}
	if r.status != StatusApproved {
		return ErrNotApproved
	}
	if !r.slot.UsableAt(now) {
		return ErrUsageWindowClosed
	}

	r.used = true
	r.status = StatusCompleted
	return nil
}

func (r *Reservation) IsHeldBy(userID uuid.UUID) bool {
	return r.userID == userID
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) UserID() uuid.UUID    { return r.userID }
func (r *Reservation) StoreID() uuid.UUID   { return r.storeID }
func (r *Reservation) Slot() SlotTime       { return r.slot }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) Used() bool           { return r.used }
func (r *Reservation) Version() int32       { return r.version }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
