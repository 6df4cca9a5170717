// dto/class_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	"pesantrenku_backend/internals/features/school/classes/model"
)

/* ========== SCHEDULE DTO ========== */

type ScheduleDTO struct {
	Days      []string `json:"days"       validate:"required,min=1,dive,oneof=Senin Selasa Rabu Kamis Jumat Sabtu Ahad"`
	StartTime string   `json:"start_time" validate:"required"`
	EndTime   string   `json:"end_time"   validate:"required"`
}

/* ========== REQUEST DTOs ========== */

type CreateClassRequest struct {
	ClassName    string      `json:"class_name"    validate:"required,min=3,max=50"`
	AcademicYear string      `json:"academic_year" validate:"required,min=4,max=9"`
	UstadID      uuid.UUID   `json:"ustad_id"      validate:"required"`
	Schedule     ScheduleDTO `json:"schedule"      validate:"required"`
	StudentIDs   []string    `json:"student_ids"   validate:"required,min=1,dive,required"`
	Status       *string     `json:"status"        validate:"omitempty,oneof=active inactive"`
}

// UpdateClassRequest: semua field opsional (partial update).
// Field yang tidak dikirim tidak di-recheck — semantik partial update
// dipertahankan dari desain asal.
type UpdateClassRequest struct {
	ClassName    *string      `json:"class_name"    validate:"omitempty,min=3,max=50"`
	AcademicYear *string      `json:"academic_year" validate:"omitempty,min=4,max=9"`
	UstadID      *uuid.UUID   `json:"ustad_id"`
	Schedule     *ScheduleDTO `json:"schedule"`
	StudentIDs   []string     `json:"student_ids"   validate:"omitempty,min=1,dive,required"`
	Status       *string      `json:"status"        validate:"omitempty,oneof=active inactive"`
}

/* ========== RESPONSE DTO ========== */

type ClassResponse struct {
	ClassID       uuid.UUID         `json:"class_id"`
	ClassName     string            `json:"class_name"`
	AcademicYear  string            `json:"academic_year"`
	UstadID       uuid.UUID         `json:"ustad_id"`
	UstadName     string            `json:"ustad_name"`
	Schedule      ScheduleDTO       `json:"schedule"`
	StudentIDs    datatypes.JSONMap `json:"student_ids"`
	StudentCount  int               `json:"student_count"`
	Status        string            `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
	CreatedBy     uuid.UUID         `json:"created_by"`
	CreatedByName string            `json:"created_by_name"`
	UpdatedAt     *time.Time        `json:"updated_at,omitempty"`
	UpdatedBy     *uuid.UUID        `json:"updated_by,omitempty"`
	UpdatedByName *string           `json:"updated_by_name,omitempty"`
}

/* ========== QUERY / FILTER DTO ========== */

type ListClassQuery struct {
	AcademicYear *string    `query:"academic_year"`
	UstadID      *uuid.UUID `query:"ustad_id"`
	Page         int        `query:"page"`
	Limit        int        `query:"limit"`
}

/* ========== HELPER: KONVERSI MODEL <-> DTO ========== */

func NewClassResponse(m *model.ClassModel) *ClassResponse {
	if m == nil {
		return nil
	}
	return &ClassResponse{
		ClassID:      m.ClassID,
		ClassName:    m.ClassName,
		AcademicYear: m.ClassAcademicYear,
		UstadID:      m.ClassUstadID,
		UstadName:    m.ClassUstadName,
		Schedule: ScheduleDTO{
			Days:      []string(m.ClassScheduleDays),
			StartTime: m.ClassStartTime,
			EndTime:   m.ClassEndTime,
		},
		StudentIDs:    m.ClassStudentIDs,
		StudentCount:  m.StudentCount(),
		Status:        m.ClassStatus,
		CreatedAt:     m.ClassCreatedAt,
		CreatedBy:     m.ClassCreatedBy,
		CreatedByName: m.ClassCreatedByName,
		UpdatedAt:     m.ClassUpdatedAt,
		UpdatedBy:     m.ClassUpdatedBy,
		UpdatedByName: m.ClassUpdatedByName,
	}
}

// MaterializeStudentIDs: []id -> map id => {enrolled_at, status:"active"}
func MaterializeStudentIDs(ids []string, enrolledAt time.Time) datatypes.JSONMap {
	out := datatypes.JSONMap{}
	ts := enrolledAt.Format(time.RFC3339)
	for _, id := range ids {
		out[id] = map[string]any{
			"enrolled_at": ts,
			"status":      "active",
		}
	}
	return out
}

// ToModel mapping CreateClassRequest -> ClassModel (untuk Create)
func (r *CreateClassRequest) ToModel(ustadName string, createdBy uuid.UUID, createdByName string) *model.ClassModel {
	now := time.Now()
	status := "active"
	if r.Status != nil {
		status = *r.Status
	}
	return &model.ClassModel{
		ClassName:          r.ClassName,
		ClassAcademicYear:  r.AcademicYear,
		ClassUstadID:       r.UstadID,
		ClassUstadName:     ustadName,
		ClassScheduleDays:  pq.StringArray(r.Schedule.Days),
		ClassStartTime:     r.Schedule.StartTime,
		ClassEndTime:       r.Schedule.EndTime,
		ClassStudentIDs:    MaterializeStudentIDs(r.StudentIDs, now),
		ClassStatus:        status,
		ClassCreatedAt:     now,
		ClassCreatedBy:     createdBy,
		ClassCreatedByName: createdByName,
	}
}

// ApplyToModel mapping UpdateClassRequest -> partial update.
func (r *UpdateClassRequest) ApplyToModel(m *model.ClassModel, updatedBy uuid.UUID, updatedByName string) {
	now := time.Now()
	if r.ClassName != nil {
		m.ClassName = *r.ClassName
	}
	if r.AcademicYear != nil {
		m.ClassAcademicYear = *r.AcademicYear
	}
	if r.UstadID != nil {
		m.ClassUstadID = *r.UstadID
	}
	if r.Schedule != nil {
		m.ClassScheduleDays = pq.StringArray(r.Schedule.Days)
		m.ClassStartTime = r.Schedule.StartTime
		m.ClassEndTime = r.Schedule.EndTime
	}
	if r.StudentIDs != nil {
		m.ClassStudentIDs = MaterializeStudentIDs(r.StudentIDs, now)
	}
	if r.Status != nil {
		m.ClassStatus = *r.Status
	}
	m.ClassUpdatedAt = &now
	m.ClassUpdatedBy = &updatedBy
	m.ClassUpdatedByName = &updatedByName
}
