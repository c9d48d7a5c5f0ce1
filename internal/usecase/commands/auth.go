package commands

import (
	"context"

	"iwparking/internal/domain/user"
	"iwparking/internal/infra"
	"iwparking/internal/pkg/clock"
	"iwparking/internal/pkg/errs"
	"iwparking/internal/pkg/jwt"
	"iwparking/internal/pkg/password"
	"iwparking/internal/usecase/queries"
	"iwparking/internal/usecase/shared"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email    string
	Password string
	Name     string
}

type LoginRequest struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID      uuid.UUID
	Role        string
	AccessToken string
}

type AuthCommands interface {
	Register(ctx context.Context, req RegisterRequest) (uuid.UUID, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req RegisterRequest) (uuid.UUID, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return uuid.Nil, err
	}
	pw, err := user.NewPassword(req.Password)
	if err != nil {
		return uuid.Nil, err
	}

	hash, err := password.Hash(pw.Value())
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	u, err := user.NewUser(email, hash, req.Name, user.RoleUser, a.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Users().Create(ctx, u); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.ErrEmailTaken
			}
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return u.ID(), nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		// Same error as a credential mismatch, to prevent user enumeration.
		return nil, errs.ErrInvalidCredentials
	}

	view, hash, err := a.readStore.FindByEmail(ctx, email.Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := password.Compare(hash, req.Password); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	token, err := a.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &LoginResult{
		UserID:      view.ID,
		Role:        role.String(),
		AccessToken: token,
	}, nil
}
