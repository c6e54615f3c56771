//go:build unit

package builder

import (
	domuser "servemart/internal/domain/user"
	reqdto "servemart/internal/handler/dto/request"
	"servemart/internal/usecase/queries"
	"servemart/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Username     string
	Email        string
	Password     string
	PasswordHash string
	Role         domuser.Role
	Bio          string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Username:     "testclient",
		Email:        "client@example.com",
		Password:     "password123",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Role:         domuser.RoleClient,
		Bio:          "Test bio",
	}
}

func (u *UserBuilder) BuildRegisterRequestDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Username: u.Username,
		Email:    u.Email,
		Password: u.Password,
		Role:     u.Role.String(),
		Bio:      u.Bio,
	}
}

func (u *UserBuilder) BuildLoginRequestDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    u.Email,
		Password: u.Password,
	}
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:       uuid.New(),
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role.String(),
		Bio:      u.Bio,
	}
}

func (u *UserBuilder) BuildSnapshot() *shared.UserSnapshot {
	return &shared.UserSnapshot{
		ID:           uuid.New(),
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
	}
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role domuser.Role) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) AsProvider() *UserBuilder {
	u.Username = "testprovider"
	u.Email = "provider@example.com"
	u.Role = domuser.RoleProvider
	return u
}
