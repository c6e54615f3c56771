package user

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrEmptyUsername   = errors.New("username cannot be empty")
	ErrInvalidUserRole = errors.New("invalid user role")
)

type User struct {
	id           uuid.UUID
	username     string
	email        string
	passwordHash string
	role         Role
	bio          string
	createdAt    time.Time
}

func NewUser(username, email, passwordHash string, role Role, bio string, now time.Time) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrEmptyUsername
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmail
	}
	if !role.IsValid() {
		return nil, ErrInvalidUserRole
	}

	return &User{
		id:           uuid.New(),
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		bio:          bio,
		createdAt:    now,
	}, nil
}

func ReconstructUser(
	id uuid.UUID,
	username, email, passwordHash string,
	role Role,
	bio string,
	createdAt time.Time,
) *User {
	return &User{
		id:           id,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		bio:          bio,
		createdAt:    createdAt,
	}
}

func (u *User) IsProvider() bool {
	return u.role == RoleProvider
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Username() string     { return u.username }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) Bio() string          { return u.bio }
func (u *User) CreatedAt() time.Time { return u.createdAt }
