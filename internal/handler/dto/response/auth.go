package response

import (
	"servemart/internal/usecase/queries"

	"github.com/google/uuid"
)

type AuthResponse struct {
	UserID uuid.UUID `json:"user_id"`
	Token  string    `json:"token"`
}

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Bio      string    `json:"bio,omitempty"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:       v.ID,
		Username: v.Username,
		Email:    v.Email,
		Role:     v.Role,
		Bio:      v.Bio,
	}
}
