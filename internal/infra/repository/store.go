package repository

import (
	"context"
	"time"

	"storeslot/internal/domain/store"
	"storeslot/internal/infra"
	"storeslot/internal/infra/db"

	"github.com/google/uuid"
)

type StoreRepository struct{}

func NewStoreRepository() *StoreRepository {
	return &StoreRepository{}
}

func (r *StoreRepository) Create(ctx context.Context, tx db.DBTX, s *store.Store) (uuid.UUID, error) {
	const query = `
		INSERT INTO stores (id, owner_id, name, location, description)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := tx.Exec(ctx, query, s.ID(), s.OwnerID(), s.Name(), s.Location(), s.Description())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create store", err)
	}
	return s.ID(), nil
}

func (r *StoreRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*store.Store, error) {
	const query = `
		SELECT id, owner_id, name, location, description, created_at
		FROM stores
		WHERE id = $1
	`

	return r.scanStore(dbtx.QueryRow(ctx, query, id))
}

func (r *StoreRepository) FindByIDAndOwner(ctx context.Context, dbtx db.DBTX, id, ownerID uuid.UUID) (*store.Store, error) {
	const query = `
		SELECT id, owner_id, name, location, description, created_at
		FROM stores
		WHERE id = $1 AND owner_id = $2
	`

	return r.scanStore(dbtx.QueryRow(ctx, query, id, ownerID))
}

func (r *StoreRepository) ExistsByNameAndOwner(ctx context.Context, dbtx db.DBTX, name string, ownerID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM stores WHERE owner_id = $1 AND name = $2)`

	var exists bool
	if err := dbtx.QueryRow(ctx, query, ownerID, name).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check store name", err)
	}
	return exists, nil
}

func (r *StoreRepository) Update(ctx context.Context, tx db.DBTX, s *store.Store) error {
	const query = `
		UPDATE stores
		SET name = $2, location = $3, description = $4
		WHERE id = $1
	`

	tag, err := tx.Exec(ctx, query, s.ID(), s.Name(), s.Location(), s.Description())
	if err != nil {
		return infra.WrapRepoErr("failed to update store", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("store not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *StoreRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	const query = `DELETE FROM stores WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete store", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("store not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *StoreRepository) scanStore(row interface{ Scan(dest ...any) error }) (*store.Store, error) {
	var (
		id          uuid.UUID
		ownerID     uuid.UUID
		name        string
		location    string
		description string
		createdAt   time.Time
	)

	if err := row.Scan(&id, &ownerID, &name, &location, &description, &createdAt); err != nil {
		return nil, infra.WrapRepoErr("failed to find store", err)
	}

	return store.ReconstructStore(id, ownerID, name, location, description, createdAt), nil
}
