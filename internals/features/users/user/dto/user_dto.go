// dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"pesantrenku_backend/internals/features/users/user/model"
)

/* ========== REQUEST DTOs ========== */

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type RegisterRequest struct {
	UserName       string  `json:"user_name" validate:"required,min=3,max=50"`
	Email          string  `json:"email" validate:"required,email"`
	Password       string  `json:"password" validate:"required,min=8"`
	Role           string  `json:"role" validate:"required,oneof=admin ustad orangtua santri"`
	Phone          *string `json:"phone"`
	Specialization *string `json:"specialization"`
	NIS            *string `json:"nis"`
	EntryYear      *int    `json:"entry_year"`
}

/* ========== RESPONSE DTOs ========== */

type UserResponse struct {
	ID             uuid.UUID `json:"id"`
	UserName       string    `json:"user_name"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	Phone          *string   `json:"phone,omitempty"`
	Specialization *string   `json:"specialization,omitempty"`
	NIS            *string   `json:"nis,omitempty"`
	EntryYear      *int      `json:"entry_year,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

// UstadResponse: daftar ustad + jumlah kelas yang sedang diampu.
// current_classes hanya untuk tampilan, bukan batasan kapasitas.
type UstadResponse struct {
	ID             uuid.UUID `json:"id"`
	UserName       string    `json:"user_name"`
	Email          string    `json:"email"`
	Phone          *string   `json:"phone,omitempty"`
	Specialization *string   `json:"specialization,omitempty"`
	CurrentClasses int       `json:"current_classes"`
}

func NewUserResponse(m *model.UserModel) UserResponse {
	return UserResponse{
		ID:             m.ID,
		UserName:       m.UserName,
		Email:          m.Email,
		Role:           m.Role,
		Phone:          m.Phone,
		Specialization: m.Specialization,
		NIS:            m.NIS,
		EntryYear:      m.EntryYear,
		Status:         m.Status,
		CreatedAt:      m.CreatedAt,
	}
}

func (r *RegisterRequest) ToModel(hashedPassword string) *model.UserModel {
	return &model.UserModel{
		UserName:       r.UserName,
		Email:          r.Email,
		Password:       hashedPassword,
		Role:           r.Role,
		Phone:          r.Phone,
		Specialization: r.Specialization,
		NIS:            r.NIS,
		EntryYear:      r.EntryYear,
		Status:         "active",
		IsActive:       true,
	}
}
