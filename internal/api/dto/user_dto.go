package dto

import "reviewhub/internal/api/models"

// CreateUserDTO used for the admin POST /api/users.
type CreateUserDTO struct {
	Username  string `json:"username" binding:"required,max=32"`
	Email     string `json:"email" binding:"required,email,max=254"`
	FirstName string `json:"first_name" binding:"max=32"`
	LastName  string `json:"last_name" binding:"max=64"`
	Bio       string `json:"bio"`
	Role      string `json:"role" binding:"omitempty,oneof=user moderator admin"`
}

// UpdateUserDTO used for the admin PATCH /api/users/:username (partial).
type UpdateUserDTO struct {
	Email     *string `json:"email,omitempty" binding:"omitempty,email,max=254"`
	FirstName *string `json:"first_name,omitempty" binding:"omitempty,max=32"`
	LastName  *string `json:"last_name,omitempty" binding:"omitempty,max=64"`
	Bio       *string `json:"bio,omitempty"`
	Role      *string `json:"role,omitempty" binding:"omitempty,oneof=user moderator admin"`
}

// UpdateMeDTO used for PATCH /api/users/me. A role field in the payload is
// accepted but ignored: the stored role always wins on the self-service path.
type UpdateMeDTO struct {
	Email     *string `json:"email,omitempty" binding:"omitempty,email,max=254"`
	FirstName *string `json:"first_name,omitempty" binding:"omitempty,max=32"`
	LastName  *string `json:"last_name,omitempty" binding:"omitempty,max=64"`
	Bio       *string `json:"bio,omitempty"`
	Role      *string `json:"role,omitempty"`
}

type UserResponse struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
	Role      string `json:"role"`
}

func UserFromModel(m *models.User) *UserResponse {
	return &UserResponse{
		Username:  m.Username,
		Email:     m.Email,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Bio:       m.Bio,
		Role:      string(m.Role),
	}
}
