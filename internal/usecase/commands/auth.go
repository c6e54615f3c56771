package commands

import (
	"context"
	"log/slog"

	"servemart/internal/domain/user"
	"servemart/internal/infra"
	"servemart/internal/pkg/clock"
	"servemart/internal/pkg/errs"
	"servemart/internal/pkg/jwt"
	"servemart/internal/pkg/password"
	"servemart/internal/usecase/shared"

	"github.com/google/uuid"
)

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
	Bio      string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthResult struct {
	UserID uuid.UUID
	Token  string
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, in LoginInput) (*AuthResult, error)
}

type authCommandsImpl struct {
	uow shared.UnitOfWork
	jwt *jwt.Service
	clk clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, jwtSvc *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{uow: uow, jwt: jwtSvc, clk: clk}
}

func (c *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	role, err := user.ParseRole(in.Role)
	if err != nil {
		return nil, errs.Wrap(err, "invalid role")
	}

	hash, err := password.HashPassword(in.Password)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	entity, err := user.NewUser(in.Username, in.Email, hash, role, in.Bio, c.clk.Now())
	if err != nil {
		return nil, errs.Wrap(err, "invalid user")
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.Users().Create(ctx, tx.DB(), entity)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrEmailAlreadyTaken
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	token, err := c.jwt.GenerateToken(id, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	slog.Info("user registered", "user_id", id, "role", role.String())

	return &AuthResult{UserID: id, Token: token}, nil
}

func (c *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	snap, err := c.uow.CommandReads().UserByEmail(ctx, in.Email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(snap.PasswordHash, in.Password); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	token, err := c.jwt.GenerateToken(snap.ID, snap.Role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	return &AuthResult{UserID: snap.ID, Token: token}, nil
}
