package readstore

import (
	"context"

	"storeslot/internal/infra"
	"storeslot/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserReadStore struct {
	pool *pgxpool.Pool
}

func NewUserReadStore(pool *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{pool: pool}
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const query = `
		SELECT id, name, phone_number, role, created_at
		FROM users
		WHERE id = $1
	`

	var view queries.AuthorizedUserView
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Name, &view.PhoneNumber, &view.Role, &view.CreatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &view, nil
}

func (s *UserReadStore) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*queries.AuthorizedUserView, string, error) {
	const query = `
		SELECT id, name, phone_number, role, created_at, password_hash
		FROM users
		WHERE phone_number = $1
	`

	var (
		view queries.AuthorizedUserView
		hash string
	)
	err := s.pool.QueryRow(ctx, query, phoneNumber).Scan(
		&view.ID, &view.Name, &view.PhoneNumber, &view.Role, &view.CreatedAt, &hash,
	)
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to find user by phone number", err)
	}
	return &view, hash, nil
}
