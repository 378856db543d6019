package dto

import (
	"time"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// RegisterRequest defines the data needed to create a user account.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest defines login credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}

// UserResponse defines the data returned for a user account.
type UserResponse struct {
	UserID    string    `json:"userID"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to UserResponse.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}
