//go:build unit || e2e

package testutil

import (
	"context"

	"storeslot/internal/infra/db"
)

// StubTxRunner runs the unit of work directly, with no transaction
// behind it. Repositories are mocked in unit tests, so the nil DBTX is
// never touched.
type StubTxRunner struct{}

func (StubTxRunner) Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return fn(ctx, nil)
}
