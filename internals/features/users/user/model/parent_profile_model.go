package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ParentProfileModel merepresentasikan tabel parent_profiles.
// Kolom children adalah format LAMA: daftar santri yang masih tertanam
// di record orangtua (belum dimigrasi ke baris users sendiri). Pembacaan
// data santri WAJIB lewat service.ReconcileStudents supaya dua format ini
// tidak pernah bocor ke logika filter/seleksi tanpa dinormalisasi.
type ParentProfileModel struct {
	ParentProfileID     uuid.UUID      `gorm:"column:parent_profile_id;type:uuid;default:gen_random_uuid();primaryKey" json:"parent_profile_id"`
	ParentProfileUserID uuid.UUID      `gorm:"column:parent_profile_user_id;type:uuid;not null;uniqueIndex" json:"parent_profile_user_id"` // FK -> users(id), role orangtua
	ParentProfileAddress *string       `gorm:"column:parent_profile_address;type:text" json:"parent_profile_address,omitempty"`

	// format legacy: [{"id":"...","name":"...","nis":"...","entry_year":2023,"status":"active"}, ...]
	ParentProfileChildren datatypes.JSON `gorm:"column:parent_profile_children;type:jsonb" json:"parent_profile_children,omitempty"`

	ParentProfileCreatedAt time.Time  `gorm:"column:parent_profile_created_at;not null;autoCreateTime" json:"parent_profile_created_at"`
	ParentProfileUpdatedAt *time.Time `gorm:"column:parent_profile_updated_at" json:"parent_profile_updated_at,omitempty"`
}

func (ParentProfileModel) TableName() string {
	return "parent_profiles"
}
