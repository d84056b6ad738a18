package response

import (
	"time"

	"safarsaga-backend/internal/data/entity"
)

type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  *string   `json:"full_name,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token,omitempty"`
	ExpiresAt *time.Time   `json:"expires_at,omitempty"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		FullName:  user.FullName,
		Phone:     user.Phone,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}
