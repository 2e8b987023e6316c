package dto

import (
	"time"

	"github.com/ourshop/shop/internal/user/domain"
)

// UserResponse represents a user in API responses. Password is the stored hash sealed
// under the session key.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"password"` //nolint:gosec // sealed hash
	Active    bool      `json:"active"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MapUserToResponse converts a domain user to an API response.
func MapUserToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Password:  user.Password,
		Active:    user.Active,
		Type:      string(user.Type),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// ListUsersResponse represents a paginated list of users.
type ListUsersResponse struct {
	Data []UserResponse `json:"data"`
}

// MapUsersToListResponse converts domain users to a list response.
func MapUsersToListResponse(users []*domain.User) ListUsersResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, MapUserToResponse(user))
	}
	return ListUsersResponse{Data: responses}
}
