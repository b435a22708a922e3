package dto

import (
	"time"

	"github.com/GlebRadaev/donations/internal/domain"
)

type RegisterRequestDTO struct {
	Name     string `json:"name" example:"Asha Rao"`
	Email    string `json:"email" example:"asha@example.com"`
	Password string `json:"password" example:"s3cret-pass"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" example:"asha@example.com"`
	Password string `json:"password" example:"s3cret-pass"`
}

type UserDTO struct {
	ID        string `json:"id" example:"4b0a3e4e-9d51-4ac9-8f0e-0c1d6f7a5a11"`
	Name      string `json:"name" example:"Asha Rao"`
	Email     string `json:"email" example:"asha@example.com"`
	Role      string `json:"role" example:"user"`
	CreatedAt string `json:"createdAt,omitempty" example:"2024-06-10T09:15:00Z"`
}

type RegisterResponseDTO struct {
	Success bool    `json:"success" example:"true"`
	Message string  `json:"message" example:"User registered successfully"`
	User    UserDTO `json:"user"`
}

type LoginResponseDTO struct {
	Success bool    `json:"success" example:"true"`
	Message string  `json:"message" example:"Login successful"`
	Token   string  `json:"token"`
	User    UserDTO `json:"user"`
}

func NewUserDTO(user *domain.User) UserDTO {
	out := UserDTO{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	}
	if !user.CreatedAt.IsZero() {
		out.CreatedAt = user.CreatedAt.Format(time.RFC3339)
	}
	return out
}
