package readstore

import (
	"context"

	"storeslot/internal/infra"
	"storeslot/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReviewReadStore struct {
	pool *pgxpool.Pool
}

func NewReviewReadStore(pool *pgxpool.Pool) *ReviewReadStore {
	return &ReviewReadStore{pool: pool}
}

const reviewViewQuery = `
	SELECT v.id, v.store_id, s.name, v.user_id, u.name, v.content, v.rating, v.created_at, v.updated_at
	FROM reviews v
	JOIN stores s ON s.id = v.store_id
	JOIN users u ON u.id = v.user_id
`

func (s *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	query := reviewViewQuery + ` WHERE v.id = $1`

	var view queries.ReviewView
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.StoreID, &view.StoreName, &view.UserID, &view.UserName,
		&view.Content, &view.Rating, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find review", err)
	}
	return &view, nil
}

func (s *ReviewReadStore) FindByStoreID(ctx context.Context, storeID uuid.UUID) ([]*queries.ReviewView, error) {
	query := reviewViewQuery + ` WHERE v.store_id = $1 ORDER BY v.created_at DESC`

	rows, err := s.pool.Query(ctx, query, storeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews by store", err)
	}
	return collectReviewViews(rows)
}

func (s *ReviewReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.ReviewView, error) {
	query := reviewViewQuery + ` WHERE v.user_id = $1 ORDER BY v.created_at DESC`

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews by user", err)
	}
	return collectReviewViews(rows)
}

func collectReviewViews(rows pgx.Rows) ([]*queries.ReviewView, error) {
	defer rows.Close()

	views := make([]*queries.ReviewView, 0)
	for rows.Next() {
		var view queries.ReviewView
		if err := rows.Scan(
			&view.ID, &view.StoreID, &view.StoreName, &view.UserID, &view.UserName,
			&view.Content, &view.Rating, &view.CreatedAt, &view.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read review rows", err)
	}
	return views, nil
}
