package commands

import (
	"context"

	"storeslot/internal/domain/user"
	reqdto "storeslot/internal/handler/dto/request"
	"storeslot/internal/infra"
	"storeslot/internal/pkg/errs"
	"storeslot/internal/pkg/jwt"
	"storeslot/internal/pkg/password"
	"storeslot/internal/usecase/queries"
)

var (
	ErrUserNotFound    = errs.New("user not found")
	ErrInvalidPassword = errs.New("invalid password")
	ErrTokenGeneration = errs.New("token generation failed")
)

type LoginResult struct {
	Token string
	User  *queries.AuthorizedUserView
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	view, hash, err := a.readStore.FindByPhoneNumber(ctx, req.PhoneNumber)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.Compare(hash, req.Password); err != nil {
		return nil, ErrInvalidPassword
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	token, err := a.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{Token: token, User: view}, nil
}
