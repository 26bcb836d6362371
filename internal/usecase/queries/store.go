package queries

import (
	"context"

	"storeslot/internal/infra"
	"storeslot/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrStoreNotFound = errs.New("store not found")

type StoreQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*StoreView, error)
	ListAll(ctx context.Context) ([]*StoreView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*StoreView, error)
}

type StoreReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*StoreView, error)
	FindAll(ctx context.Context) ([]*StoreView, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*StoreView, error)
}

type storeQueriesImpl struct {
	readStore StoreReadStore
}

func NewStoreQueries(readStore StoreReadStore) StoreQueries {
	return &storeQueriesImpl{readStore: readStore}
}

func (q *storeQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*StoreView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *storeQueriesImpl) ListAll(ctx context.Context) ([]*StoreView, error) {
	return q.readStore.FindAll(ctx)
}

func (q *storeQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*StoreView, error) {
	return q.readStore.FindByOwnerID(ctx, ownerID)
}
