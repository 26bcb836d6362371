package response

import (
	"time"

	"storeslot/internal/usecase/queries"

	"github.com/google/uuid"
)

type RegisterUserResponse struct {
	ID uuid.UUID `json:"id"`
}

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phoneNumber"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromAuthorizedUserView(rm *queries.AuthorizedUserView) *UserResponse {
	return &UserResponse{
		ID:          rm.ID,
		Name:        rm.Name,
		PhoneNumber: rm.PhoneNumber,
		Role:        rm.Role,
		CreatedAt:   rm.CreatedAt,
	}
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	User        *UserResponse `json:"user"`
}
