// file: internals/features/school/reports/dto/report_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"pesantrenku_backend/internals/features/school/reports/model"
)

/* ================= Requests ================= */

type CreateReportRequest struct {
	SantriID uuid.UUID      `json:"santri_id" validate:"required"`
	ClassID  uuid.UUID      `json:"class_id"  validate:"required"`
	Type     string         `json:"type"      validate:"required,oneof=hafalan nilai perilaku"`
	Payload  datatypes.JSON `json:"payload"   validate:"required"`
	Notes    string         `json:"notes"     validate:"omitempty,max=1000"`
}

// UpdateReportRequest: partial update, field nil tidak diubah.
type UpdateReportRequest struct {
	Payload *datatypes.JSON `json:"payload" validate:"omitempty"`
	Notes   *string         `json:"notes"   validate:"omitempty,max=1000"`
}

type ListReportQuery struct {
	SantriID *uuid.UUID `query:"santri_id"`
	ClassID  *uuid.UUID `query:"class_id"`
	Type     *string    `query:"type"`
}

/* ================= Responses ================= */

type ReportResponse struct {
	ReportID  uuid.UUID      `json:"report_id"`
	SantriID  uuid.UUID      `json:"santri_id"`
	ClassID   uuid.UUID      `json:"class_id"`
	UstadID   uuid.UUID      `json:"ustad_id"`
	Type      string         `json:"type"`
	Payload   datatypes.JSON `json:"payload"`
	Notes     string         `json:"notes,omitempty"`
	CreatedBy string         `json:"created_by_name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func NewReportResponse(m *model.ReportModel) *ReportResponse {
	return &ReportResponse{
		ReportID:  m.ReportID,
		SantriID:  m.ReportSantriID,
		ClassID:   m.ReportClassID,
		UstadID:   m.ReportUstadID,
		Type:      m.ReportType,
		Payload:   m.ReportPayload,
		Notes:     m.ReportNotes,
		CreatedBy: m.ReportCreatedByName,
		CreatedAt: m.ReportCreatedAt,
		UpdatedAt: m.ReportUpdatedAt,
	}
}

/* ================= Converters ================= */

func (r *CreateReportRequest) ToModel(ustadID, createdBy uuid.UUID, createdByName string) *model.ReportModel {
	return &model.ReportModel{
		ReportSantriID:      r.SantriID,
		ReportClassID:       r.ClassID,
		ReportUstadID:       ustadID,
		ReportType:          r.Type,
		ReportPayload:       r.Payload,
		ReportNotes:         r.Notes,
		ReportCreatedBy:     createdBy,
		ReportCreatedByName: createdByName,
	}
}

func (r *UpdateReportRequest) ApplyToModel(m *model.ReportModel, updatedBy uuid.UUID, updatedByName string) {
	if r.Payload != nil {
		m.ReportPayload = *r.Payload
	}
	if r.Notes != nil {
		m.ReportNotes = *r.Notes
	}
	m.ReportUpdatedBy = &updatedBy
	m.ReportUpdatedByName = updatedByName
}
