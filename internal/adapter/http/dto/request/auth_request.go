package request

import "workshop_jobs/internal/usecase"

type RegisterRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Role       string `json:"role" binding:"required,role"`
	InviteCode string `json:"invite_code"`
}

func (r RegisterRequest) ToInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Email:      r.Email,
		Password:   r.Password,
		Name:       r.Name,
		Phone:      r.Phone,
		Role:       r.Role,
		InviteCode: r.InviteCode,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
