// file: internals/features/school/reports/model/report_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Jenis laporan perkembangan santri.
const (
	ReportTypeHafalan  = "hafalan"  // setoran hafalan (surah + rentang ayat)
	ReportTypeNilai    = "nilai"    // nilai akademik (mapel + skor)
	ReportTypePerilaku = "perilaku" // catatan perilaku (deskripsi + tingkat)
)

type ReportModel struct {
	ReportID       uuid.UUID `gorm:"column:report_id;type:uuid;default:gen_random_uuid();primaryKey" json:"report_id"`
	ReportSantriID uuid.UUID `gorm:"column:report_santri_id;type:uuid;not null;index" json:"report_santri_id"`
	ReportClassID  uuid.UUID `gorm:"column:report_class_id;type:uuid;not null;index" json:"report_class_id"`
	ReportUstadID  uuid.UUID `gorm:"column:report_ustad_id;type:uuid;not null;index" json:"report_ustad_id"`

	// hafalan | nilai | perilaku
	ReportType    string         `gorm:"column:report_type;type:varchar(20);not null;index" json:"report_type"`
	ReportPayload datatypes.JSON `gorm:"column:report_payload;type:jsonb;not null" json:"report_payload"`
	ReportNotes   string         `gorm:"column:report_notes;type:text" json:"report_notes"`

	ReportCreatedBy     uuid.UUID  `gorm:"column:report_created_by;type:uuid;not null" json:"report_created_by"`
	ReportCreatedByName string     `gorm:"column:report_created_by_name;type:varchar(50);not null" json:"report_created_by_name"`
	ReportUpdatedBy     *uuid.UUID `gorm:"column:report_updated_by;type:uuid" json:"report_updated_by,omitempty"`
	ReportUpdatedByName string     `gorm:"column:report_updated_by_name;type:varchar(50)" json:"report_updated_by_name,omitempty"`

	ReportCreatedAt time.Time `gorm:"column:report_created_at;autoCreateTime" json:"report_created_at"`
	ReportUpdatedAt time.Time `gorm:"column:report_updated_at;autoUpdateTime" json:"report_updated_at"`
}

func (ReportModel) TableName() string { return "reports" }

func IsValidReportType(t string) bool {
	switch t {
	case ReportTypeHafalan, ReportTypeNilai, ReportTypePerilaku:
		return true
	}
	return false
}
