package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel merepresentasikan tabel users (semua role: admin, ustad, orangtua, santri)
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName string    `gorm:"size:50;not null" json:"user_name" validate:"required,min=3,max=50"`
	Email    string    `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password string    `gorm:"not null" json:"-" validate:"required,min=8"`
	Role     string    `gorm:"type:varchar(20);not null;default:'santri'" json:"role" validate:"omitempty,oneof=admin ustad orangtua santri"`
	Phone    *string   `gorm:"size:30" json:"phone,omitempty"`

	// khusus ustad
	Specialization *string `gorm:"size:120" json:"specialization,omitempty"`

	// khusus santri (format baru: santri sebagai user top-level)
	NIS       *string `gorm:"size:30;uniqueIndex" json:"nis,omitempty"`
	EntryYear *int    `gorm:"column:entry_year" json:"entry_year,omitempty"`
	Status    string  `gorm:"type:varchar(20);not null;default:'active'" json:"status" validate:"omitempty,oneof=active inactive"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
