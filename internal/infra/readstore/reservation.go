package readstore

import (
	"context"

	"storeslot/internal/infra"
	"storeslot/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationReadStore struct {
	pool *pgxpool.Pool
}

func NewReservationReadStore(pool *pgxpool.Pool) *ReservationReadStore {
	return &ReservationReadStore{pool: pool}
}

// Projections join store and user names in so the API never makes a
// second lookup for display fields.
const reservationViewQuery = `
	SELECT r.id, r.store_id, s.name, r.user_id, u.name, r.reservation_time, r.status, r.used, r.created_at
	FROM reservations r
	JOIN stores s ON s.id = r.store_id
	JOIN users u ON u.id = r.user_id
`

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	query := reservationViewQuery + ` WHERE r.id = $1`

	var view queries.ReservationView
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.StoreID, &view.StoreName, &view.UserID, &view.UserName,
		&view.ReservationTime, &view.Status, &view.Used, &view.CreatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return &view, nil
}

func (s *ReservationReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationView, error) {
	query := reservationViewQuery + ` WHERE r.user_id = $1 ORDER BY r.reservation_time DESC`

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by user", err)
	}
	return collectReservationViews(rows)
}

func (s *ReservationReadStore) FindByStoreID(ctx context.Context, storeID uuid.UUID) ([]*queries.ReservationView, error) {
	query := reservationViewQuery + ` WHERE r.store_id = $1 ORDER BY r.reservation_time DESC`

	rows, err := s.pool.Query(ctx, query, storeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by store", err)
	}
	return collectReservationViews(rows)
}

func collectReservationViews(rows pgx.Rows) ([]*queries.ReservationView, error) {
	defer rows.Close()

	views := make([]*queries.ReservationView, 0)
	for rows.Next() {
		var view queries.ReservationView
		if err := rows.Scan(
			&view.ID, &view.StoreID, &view.StoreName, &view.UserID, &view.UserName,
			&view.ReservationTime, &view.Status, &view.Used, &view.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation rows", err)
	}
	return views, nil
}
