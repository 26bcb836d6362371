package queries

import (
	"context"

	"storeslot/internal/infra"
	"storeslot/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrStoreAccessDenied   = errs.New("store access denied")
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
	// ListByStore is owner-gated: only the store owner may see the
	// store's reservation book.
	ListByStore(ctx context.Context, storeID, actorID uuid.UUID) ([]*ReservationView, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
	FindByStoreID(ctx context.Context, storeID uuid.UUID) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	readStore      ReservationReadStore
	storeReadStore StoreReadStore
}

func NewReservationQueries(readStore ReservationReadStore, storeReadStore StoreReadStore) ReservationQueries {
	return &reservationQueriesImpl{
		readStore:      readStore,
		storeReadStore: storeReadStore,
	}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error) {
	return q.readStore.FindByUserID(ctx, userID)
}

func (q *reservationQueriesImpl) ListByStore(ctx context.Context, storeID, actorID uuid.UUID) ([]*ReservationView, error) {
	storeView, err := q.storeReadStore.FindByID(ctx, storeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}
	if storeView.OwnerID != actorID {
		return nil, ErrStoreAccessDenied
	}

	return q.readStore.FindByStoreID(ctx, storeID)
}
