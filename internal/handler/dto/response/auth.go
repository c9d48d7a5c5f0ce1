package response

import (
	"iwparking/internal/usecase/commands"
	"iwparking/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoginResponse struct {
	UserID      uuid.UUID `json:"userId"`
	Role        string    `json:"role"`
	AccessToken string    `json:"accessToken"`
}

type RegisterResponse struct {
	ID uuid.UUID `json:"id"`
}

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`
}

func FromLoginResult(res *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		UserID:      res.UserID,
		Role:        res.Role,
		AccessToken: res.AccessToken,
	}
}

func FromUserView(view *queries.AuthorizedUserView) *UserResponse {
	return &UserResponse{
		ID:    view.ID,
		Email: view.Email,
		Name:  view.Name,
		Role:  view.Role,
	}
}
