package commands

import (
	"context"

	"storeslot/internal/domain/user"
	reqdto "storeslot/internal/handler/dto/request"
	"storeslot/internal/infra"
	"storeslot/internal/infra/db"
	"storeslot/internal/pkg/errs"
	"storeslot/internal/pkg/password"
	"storeslot/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserAlreadyRegistered = errs.New("phone number already registered")
	ErrAlreadyPartner        = errs.New("user is already a partner")
)

type UserCommands interface {
	Register(ctx context.Context, req reqdto.RegisterUserRequest) (uuid.UUID, error)
	ApplyForPartner(ctx context.Context, userID uuid.UUID) error
}

type userCommandsImpl struct {
	runner   shared.TxRunner
	userRepo UserRepository
}

func NewUserCommands(runner shared.TxRunner, userRepo UserRepository) UserCommands {
	return &userCommandsImpl{
		runner:   runner,
		userRepo: userRepo,
	}
}

func (u *userCommandsImpl) Register(ctx context.Context, req reqdto.RegisterUserRequest) (uuid.UUID, error) {
	phone, pass, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	hash, err := password.Hash(pass.Value())
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to hash password")
	}

	usr, err := user.NewUser(req.Name, phone, hash)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	var userID uuid.UUID
	err = u.runner.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		userID, err = u.userRepo.Create(ctx, tx, usr)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrUserAlreadyRegistered
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return userID, nil
}

// ApplyForPartner upgrades the account to PARTNER so it may register
// stores. Applying twice is a conflict, not a no-op.
func (u *userCommandsImpl) ApplyForPartner(ctx context.Context, userID uuid.UUID) error {
	return u.runner.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		usr, err := u.userRepo.FindByID(ctx, tx, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if usr.IsPartner() {
			return ErrAlreadyPartner
		}

		usr.BecomePartner()
		if err := u.userRepo.UpdateRole(ctx, tx, usr); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
