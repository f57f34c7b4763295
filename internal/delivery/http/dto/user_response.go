package dto

import "resume-match/internal/domain/user"

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{ID: u.ID.String(), Email: u.Email, Name: u.Name}
}
