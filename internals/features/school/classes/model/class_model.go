// models/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// ClassModel merepresentasikan tabel `classes` (kelas = kelompok belajar terjadwal)
type ClassModel struct {
	ClassID uuid.UUID `json:"class_id" gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey"`

	ClassName         string `json:"class_name" gorm:"column:class_name;type:varchar(50);not null"`
	ClassAcademicYear string `json:"class_academic_year" gorm:"column:class_academic_year;type:varchar(9);not null"` // contoh "2024/2025"

	ClassUstadID   uuid.UUID `json:"class_ustad_id" gorm:"column:class_ustad_id;type:uuid;not null"` // FK -> users(id), role ustad
	ClassUstadName string    `json:"class_ustad_name" gorm:"column:class_ustad_name;type:varchar(50);not null"`      // snapshot nama saat create/update

	// jadwal: hari (nama hari Indonesia) + jam "HH:MM", interval half-open [start, end)
	ClassScheduleDays pq.StringArray `json:"class_schedule_days" gorm:"column:class_schedule_days;type:text[];not null"`
	ClassStartTime    string         `json:"class_start_time" gorm:"column:class_start_time;type:varchar(5);not null"`
	ClassEndTime      string         `json:"class_end_time" gorm:"column:class_end_time;type:varchar(5);not null"`

	// santri id -> {"enrolled_at": RFC3339, "status": "active"|"inactive"}
	ClassStudentIDs datatypes.JSONMap `json:"class_student_ids" gorm:"column:class_student_ids;type:jsonb;not null"`

	ClassStatus string `json:"class_status" gorm:"column:class_status;type:varchar(20);not null;default:'active'"`

	// Audit
	ClassCreatedAt     time.Time  `json:"class_created_at" gorm:"column:class_created_at;not null;autoCreateTime"`
	ClassCreatedBy     uuid.UUID  `json:"class_created_by" gorm:"column:class_created_by;type:uuid;not null"`
	ClassCreatedByName string     `json:"class_created_by_name" gorm:"column:class_created_by_name;type:varchar(50);not null"`
	ClassUpdatedAt     *time.Time `json:"class_updated_at,omitempty" gorm:"column:class_updated_at"`
	ClassUpdatedBy     *uuid.UUID `json:"class_updated_by,omitempty" gorm:"column:class_updated_by;type:uuid"`
	ClassUpdatedByName *string    `json:"class_updated_by_name,omitempty" gorm:"column:class_updated_by_name;type:varchar(50)"`
}

func (ClassModel) TableName() string {
	return "classes"
}

// StudentCount = kardinalitas class_student_ids
func (m *ClassModel) StudentCount() int {
	return len(m.ClassStudentIDs)
}
