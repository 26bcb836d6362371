package shared

import (
	"context"

	"storeslot/internal/infra/db"
)

// TxRunner executes a unit of work as a single all-or-nothing
// transaction. Every mutating usecase goes through Within so state
// changes commit together or not at all.
type TxRunner interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
}
