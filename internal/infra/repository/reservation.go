package repository

import (
	"context"
	"time"

	"storeslot/internal/domain/reservation"
	"storeslot/internal/infra"
	"storeslot/internal/infra/db"
	"storeslot/internal/usecase/commands"

	"github.com/google/uuid"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	const query = `
		INSERT INTO reservations (id, user_id, store_id, reservation_time, status, used, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := tx.Exec(ctx, query,
		res.ID(),
		res.UserID(),
		res.StoreID(),
		res.Slot().Value(),
		res.Status().String(),
		res.Used(),
		res.Version(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}
	return res.ID(), nil
}

// FindByID loads the reservation together with its store's owner, which
// every state-changing operation needs for its ownership check.
func (r *ReservationRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*commands.ReservationRecord, error) {
	const query = `
		SELECT r.id, r.user_id, r.store_id, r.reservation_time, r.status, r.used, r.version, r.created_at,
		       s.owner_id
		FROM reservations r
		JOIN stores s ON s.id = r.store_id
		WHERE r.id = $1
	`

	var (
		resID        uuid.UUID
		userID       uuid.UUID
		storeID      uuid.UUID
		slot         time.Time
		status       string
		used         bool
		version      int32
		createdAt    time.Time
		storeOwnerID uuid.UUID
	)

	err := dbtx.QueryRow(ctx, query, id).Scan(
		&resID, &userID, &storeID, &slot, &status, &used, &version, &createdAt, &storeOwnerID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}

	entity := reservation.ReconstructReservation(
		resID, userID, storeID,
		reservation.ReconstructSlotTime(slot),
		reservation.Status(status),
		used,
		version,
		createdAt,
	)

	return &commands.ReservationRecord{
		Reservation:  entity,
		StoreOwnerID: storeOwnerID,
	}, nil
}

// UpdateState writes status and used guarded by the version the entity
// was loaded with. Losing the version race yields zero affected rows.
func (r *ReservationRepository) UpdateState(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error {
	const query = `
		UPDATE reservations
		SET status = $2, used = $3, version = version + 1
		WHERE id = $1 AND version = $4
	`

	tag, err := tx.Exec(ctx, query, res.ID(), res.Status().String(), res.Used(), res.Version())
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation state", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation was updated concurrently", nil, infra.KindVersionConflict)
	}
	return nil
}
