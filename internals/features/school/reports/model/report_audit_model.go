// file: internals/features/school/reports/model/report_audit_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ReportAuditModel menyimpan salinan utuh laporan sebelum dihapus.
// Beda dengan kelas: laporan wajib punya jejak audit pra-hapus.
type ReportAuditModel struct {
	ReportAuditID       uuid.UUID      `gorm:"column:report_audit_id;type:uuid;default:gen_random_uuid();primaryKey" json:"report_audit_id"`
	ReportAuditReportID uuid.UUID      `gorm:"column:report_audit_report_id;type:uuid;not null;index" json:"report_audit_report_id"`
	ReportAuditSnapshot datatypes.JSON `gorm:"column:report_audit_snapshot;type:jsonb;not null" json:"report_audit_snapshot"`

	ReportAuditDeletedBy     uuid.UUID `gorm:"column:report_audit_deleted_by;type:uuid;not null" json:"report_audit_deleted_by"`
	ReportAuditDeletedByName string    `gorm:"column:report_audit_deleted_by_name;type:varchar(50);not null" json:"report_audit_deleted_by_name"`
	ReportAuditDeletedAt     time.Time `gorm:"column:report_audit_deleted_at;autoCreateTime" json:"report_audit_deleted_at"`
}

func (ReportAuditModel) TableName() string { return "report_audits" }
