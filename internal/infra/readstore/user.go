package readstore

import (
	"context"

	"servemart/internal/domain/user"
	"servemart/internal/infra"
	"servemart/internal/infra/db"
	"servemart/internal/infra/pgconv"
	"servemart/internal/usecase/queries"
	"servemart/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

var _ queries.UserReadStore = (*UserReadStore)(nil)

const findUserByIDSQL = `
SELECT id, username, email, role, bio
FROM users
WHERE id = $1`

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	var view queries.UserView
	err := r.db.QueryRow(ctx, findUserByIDSQL, id).Scan(
		&view.ID, &view.Username, &view.Email, &view.Role, &view.Bio,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &view, nil
}

const snapshotUserByEmailSQL = `
SELECT id, username, email, password_hash, role
FROM users
WHERE email = $1`

func (r *UserReadStore) SnapshotByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	var (
		snap shared.UserSnapshot
		role string
	)
	err := r.db.QueryRow(ctx, snapshotUserByEmailSQL, email).Scan(
		&snap.ID, &snap.Username, &snap.Email, &snap.PasswordHash, &role,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}

	snap.Role = user.Role(role)
	return &snap, nil
}
