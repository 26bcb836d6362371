package readstore

import (
	"context"

	"storeslot/internal/infra"
	"storeslot/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StoreReadStore struct {
	pool *pgxpool.Pool
}

func NewStoreReadStore(pool *pgxpool.Pool) *StoreReadStore {
	return &StoreReadStore{pool: pool}
}

const storeViewColumns = `id, owner_id, name, location, description, created_at`

func (s *StoreReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.StoreView, error) {
	query := `SELECT ` + storeViewColumns + ` FROM stores WHERE id = $1`

	var view queries.StoreView
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.OwnerID, &view.Name, &view.Location, &view.Description, &view.CreatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find store", err)
	}
	return &view, nil
}

func (s *StoreReadStore) FindAll(ctx context.Context) ([]*queries.StoreView, error) {
	query := `SELECT ` + storeViewColumns + ` FROM stores ORDER BY created_at DESC`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stores", err)
	}
	return collectStoreViews(rows)
}

func (s *StoreReadStore) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*queries.StoreView, error) {
	query := `SELECT ` + storeViewColumns + ` FROM stores WHERE owner_id = $1 ORDER BY created_at DESC`

	rows, err := s.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stores by owner", err)
	}
	return collectStoreViews(rows)
}

func collectStoreViews(rows pgx.Rows) ([]*queries.StoreView, error) {
	defer rows.Close()

	views := make([]*queries.StoreView, 0)
	for rows.Next() {
		var view queries.StoreView
		if err := rows.Scan(
			&view.ID, &view.OwnerID, &view.Name, &view.Location, &view.Description, &view.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan store row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read store rows", err)
	}
	return views, nil
}
