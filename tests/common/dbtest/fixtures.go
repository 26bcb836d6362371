//go:build unit || e2e

package dbtest

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ResetDB truncates all tables so each subtest starts from a clean
// database. CASCADE covers the FK chain users -> stores -> reservations
// -> reviews.
func ResetDB(pool *pgxpool.Pool) error {
	ctx := context.Background()
	_, err := pool.Exec(ctx, "TRUNCATE TABLE users, stores, reservations, reviews CASCADE")
	return err
}
