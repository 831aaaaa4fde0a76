package response

import (
	"time"

	"book-my-property/internal/data/entity"
)

// AuthResult is the outcome of a register or login attempt. Business
// failures set Success=false and a Reason; they are not errors.
type AuthResult struct {
	Success   bool          `json:"success"`
	Token     string        `json:"token,omitempty"`
	ExpiresAt *time.Time    `json:"expires_at,omitempty"`
	Reason    string        `json:"reason,omitempty"`
	User      *UserResponse `json:"user,omitempty"`
}

func AuthFailed(reason string) *AuthResult {
	return &AuthResult{Success: false, Reason: reason}
}

func AuthSucceeded(user *entity.User, role, token string, expiresAt time.Time) *AuthResult {
	u := UserToResponse(user, role)
	return &AuthResult{
		Success:   true,
		Token:     token,
		ExpiresAt: &expiresAt,
		User:      &u,
	}
}

type UserResponse struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"is_active"`
	IsDeleted   bool      `json:"is_deleted,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Helper converters
func UserToResponse(user *entity.User, role string) UserResponse {
	return UserResponse{
		ID:          user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Role:        role,
		IsActive:    user.IsActive,
		IsDeleted:   user.IsDeleted,
		CreatedAt:   user.CreatedAt,
	}
}
