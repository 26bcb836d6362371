package queries

import (
	"context"

	"storeslot/internal/infra"
	"storeslot/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReviewNotFound = errs.New("review not found")

type ReviewQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	// ListByStore requires the store to exist but is otherwise public.
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]*ReviewView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReviewView, error)
}

type ReviewReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	FindByStoreID(ctx context.Context, storeID uuid.UUID) ([]*ReviewView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*ReviewView, error)
}

type reviewQueriesImpl struct {
	readStore      ReviewReadStore
	storeReadStore StoreReadStore
}

func NewReviewQueries(readStore ReviewReadStore, storeReadStore StoreReadStore) ReviewQueries {
	return &reviewQueriesImpl{
		readStore:      readStore,
		storeReadStore: storeReadStore,
	}
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *reviewQueriesImpl) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*ReviewView, error) {
	if _, err := q.storeReadStore.FindByID(ctx, storeID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}

	return q.readStore.FindByStoreID(ctx, storeID)
}

func (q *reviewQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReviewView, error) {
	return q.readStore.FindByUserID(ctx, userID)
}
