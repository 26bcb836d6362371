package commands

import (
	"context"

	"storeslot/internal/domain/store"
	reqdto "storeslot/internal/handler/dto/request"
	"storeslot/internal/infra"
	"storeslot/internal/infra/db"
	"storeslot/internal/pkg/errs"
	"storeslot/internal/usecase/queries"
	"storeslot/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrStoreNotFound      = errs.New("store not found")
	ErrPartnerRequired    = errs.New("partner role required")
	ErrDuplicateStoreName = errs.New("store name already registered by this owner")
)

type StoreCommands interface {
	CreateStore(ctx context.Context, req reqdto.CreateStoreRequest, ownerID uuid.UUID) (*queries.StoreView, error)
	UpdateStore(ctx context.Context, storeID uuid.UUID, req reqdto.UpdateStoreRequest, actorID uuid.UUID) (*queries.StoreView, error)
	DeleteStore(ctx context.Context, storeID, actorID uuid.UUID) error
}

type storeCommandsImpl struct {
	runner       shared.TxRunner
	storeRepo    StoreRepository
	userRepo     UserRepository
	storeQueries queries.StoreQueries
}

func NewStoreCommands(
	runner shared.TxRunner,
	storeRepo StoreRepository,
	userRepo UserRepository,
	storeQueries queries.StoreQueries,
) StoreCommands {
	return &storeCommandsImpl{
		runner:       runner,
		storeRepo:    storeRepo,
		userRepo:     userRepo,
		storeQueries: storeQueries,
	}
}

func (u *storeCommandsImpl) CreateStore(
	ctx context.Context,
	req reqdto.CreateStoreRequest,
	ownerID uuid.UUID,
) (*queries.StoreView, error) {
	var storeID uuid.UUID

	err := u.runner.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		owner, err := u.userRepo.FindByID(ctx, tx, ownerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !owner.IsPartner() {
			return ErrPartnerRequired
		}

		exists, err := u.storeRepo.ExistsByNameAndOwner(ctx, tx, req.Name, ownerID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if exists {
			return ErrDuplicateStoreName
		}

		st, err := store.NewStore(ownerID, req.Name, req.Location, req.Description)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		storeID, err = u.storeRepo.Create(ctx, tx, st)
		if err != nil {
			// Unique index on (owner_id, name) closes the check-then-act race.
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateStoreName
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return u.readBack(ctx, storeID)
}

func (u *storeCommandsImpl) UpdateStore(
	ctx context.Context,
	storeID uuid.UUID,
	req reqdto.UpdateStoreRequest,
	actorID uuid.UUID,
) (*queries.StoreView, error) {
	err := u.runner.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		st, err := u.findOwnedStore(ctx, tx, storeID, actorID)
		if err != nil {
			return err
		}

		if err := st.Rename(req.Name, req.Location, req.Description); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		if err := u.storeRepo.Update(ctx, tx, st); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateStoreName
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return u.readBack(ctx, storeID)
}

func (u *storeCommandsImpl) DeleteStore(ctx context.Context, storeID, actorID uuid.UUID) error {
	return u.runner.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := u.findOwnedStore(ctx, tx, storeID, actorID); err != nil {
			return err
		}

		if err := u.storeRepo.Delete(ctx, tx, storeID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// findOwnedStore looks the store up scoped to the owner. A store owned
// by someone else is indistinguishable from a missing one.
func (u *storeCommandsImpl) findOwnedStore(ctx context.Context, tx db.DBTX, storeID, actorID uuid.UUID) (*store.Store, error) {
	st, err := u.storeRepo.FindByIDAndOwner(ctx, tx, storeID, actorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return st, nil
}

func (u *storeCommandsImpl) readBack(ctx context.Context, storeID uuid.UUID) (*queries.StoreView, error) {
	view, err := u.storeQueries.GetByID(ctx, storeID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}
