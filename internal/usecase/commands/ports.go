package commands

import (
	"context"

	"storeslot/internal/domain/reservation"
	"storeslot/internal/domain/review"
	"storeslot/internal/domain/store"
	"storeslot/internal/domain/user"
	"storeslot/internal/infra/db"

	"github.com/google/uuid"
)

// ReservationRecord pairs a reservation with the owner of its store, so
// ownership checks need no second lookup.
type ReservationRecord struct {
	Reservation  *reservation.Reservation
	StoreOwnerID uuid.UUID
}

type ReviewRecord struct {
	Review       *review.Review
	StoreOwnerID uuid.UUID
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error)
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*user.User, error)
	FindByPhoneNumber(ctx context.Context, dbtx db.DBTX, phoneNumber user.PhoneNumber) (*user.User, error)
	UpdateRole(ctx context.Context, tx db.DBTX, u *user.User) error
}

type StoreRepository interface {
	Create(ctx context.Context, tx db.DBTX, s *store.Store) (uuid.UUID, error)
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*store.Store, error)
	FindByIDAndOwner(ctx context.Context, dbtx db.DBTX, id, ownerID uuid.UUID) (*store.Store, error)
	ExistsByNameAndOwner(ctx context.Context, dbtx db.DBTX, name string, ownerID uuid.UUID) (bool, error)
	Update(ctx context.Context, tx db.DBTX, s *store.Store) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type ReservationRepository interface {
	Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*ReservationRecord, error)
	// UpdateState persists status/used guarded by the version counter;
	// a stale version surfaces as KindVersionConflict.
	UpdateState(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error
}

type ReviewRepository interface {
	Create(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error)
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*ReviewRecord, error)
	Update(ctx context.Context, tx db.DBTX, rev *review.Review) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}
