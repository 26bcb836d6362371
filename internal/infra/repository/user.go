package repository

import (
	"context"
	"time"

	"storeslot/internal/domain/user"
	"storeslot/internal/infra"
	"storeslot/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (id, name, phone_number, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := tx.Exec(ctx, query, u.ID(), u.Name(), u.PhoneNumber().Value(), u.PasswordHash(), u.Role().String())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return u.ID(), nil
}

func (r *UserRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*user.User, error) {
	const query = `
		SELECT id, name, phone_number, password_hash, role, created_at
		FROM users
		WHERE id = $1
	`

	return r.scanUser(dbtx.QueryRow(ctx, query, id))
}

func (r *UserRepository) FindByPhoneNumber(ctx context.Context, dbtx db.DBTX, phoneNumber user.PhoneNumber) (*user.User, error) {
	const query = `
		SELECT id, name, phone_number, password_hash, role, created_at
		FROM users
		WHERE phone_number = $1
	`

	return r.scanUser(dbtx.QueryRow(ctx, query, phoneNumber.Value()))
}

func (r *UserRepository) UpdateRole(ctx context.Context, tx db.DBTX, u *user.User) error {
	const query = `UPDATE users SET role = $2 WHERE id = $1`

	tag, err := tx.Exec(ctx, query, u.ID(), u.Role().String())
	if err != nil {
		return infra.WrapRepoErr("failed to update user role", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) scanUser(row interface{ Scan(dest ...any) error }) (*user.User, error) {
	var (
		id           uuid.UUID
		name         string
		phone        string
		passwordHash string
		role         string
		createdAt    time.Time
	)

	if err := row.Scan(&id, &name, &phone, &passwordHash, &role, &createdAt); err != nil {
		return nil, infra.WrapRepoErr("failed to find user", err)
	}

	phoneNumber, err := user.NewPhoneNumber(phone)
	if err != nil {
		return nil, infra.WrapRepoErr("stored phone number is invalid", err)
	}

	return user.ReconstructUser(id, name, phoneNumber, passwordHash, user.Role(role), createdAt), nil
}
