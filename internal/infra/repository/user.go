package repository

import (
	"context"

	"servemart/internal/domain/user"
	"servemart/internal/infra"
	"servemart/internal/infra/db"
	"servemart/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

var _ shared.UserRepository = (*UserRepository)(nil)

const createUserSQL = `
INSERT INTO users (id, username, email, password_hash, role, bio, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

func (r *UserRepository) Create(ctx context.Context, dbtx db.DBTX, u *user.User) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, createUserSQL,
		u.ID(),
		u.Username(),
		u.Email(),
		u.PasswordHash(),
		u.Role().String(),
		u.Bio(),
		u.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err, kindFromPgErr(err))
	}
	return id, nil
}
