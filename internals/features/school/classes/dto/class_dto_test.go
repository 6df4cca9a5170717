package dto

import (
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validate = validator.New()

func validCreateReq() CreateClassRequest {
	return CreateClassRequest{
		ClassName:    "Kelas 7A",
		AcademicYear: "2024/2025",
		UstadID:      uuid.New(),
		Schedule: ScheduleDTO{
			Days:      []string{"Senin"},
			StartTime: "08:00",
			EndTime:   "09:00",
		},
		StudentIDs: []string{uuid.NewString()},
	}
}

func TestCreateClassRequest_NameBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		className string
		wantErr   bool
	}{
		{name: "2 chars fails", className: "Ab", wantErr: true},
		{name: "3 chars ok", className: "Abc", wantErr: false},
		{name: "50 chars ok", className: strings.Repeat("a", 50), wantErr: false},
		{name: "51 chars fails", className: strings.Repeat("a", 51), wantErr: true},
		{name: "empty fails", className: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateReq()
			req.ClassName = tt.className
			err := validate.Struct(req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateClassRequest_StudentIDsBoundaries(t *testing.T) {
	req := validCreateReq()

	req.StudentIDs = nil
	assert.Error(t, validate.Struct(req), "tanpa santri harus gagal")

	req.StudentIDs = []string{}
	assert.Error(t, validate.Struct(req), "daftar kosong harus gagal")

	req.StudentIDs = []string{uuid.NewString()}
	assert.NoError(t, validate.Struct(req), "satu santri harus lolos")
}

func TestCreateClassRequest_ScheduleDays(t *testing.T) {
	req := validCreateReq()

	req.Schedule.Days = []string{}
	assert.Error(t, validate.Struct(req))

	req.Schedule.Days = []string{"Monday"}
	assert.Error(t, validate.Struct(req), "nama hari harus bahasa Indonesia")

	req.Schedule.Days = []string{"Senin", "Kamis"}
	assert.NoError(t, validate.Struct(req))
}

func TestMaterializeStudentIDs(t *testing.T) {
	now := time.Date(2024, 7, 1, 8, 0, 0, 0, time.UTC)
	ids := []string{"s1", "s2"}

	got := MaterializeStudentIDs(ids, now)

	require.Len(t, got, 2)
	for _, id := range ids {
		entry, ok := got[id].(map[string]any)
		require.True(t, ok, id)
		assert.Equal(t, now.Format(time.RFC3339), entry["enrolled_at"])
		assert.Equal(t, "active", entry["status"])
	}
}

func TestUpdateClassRequest_PartialAppliesOnlySentFields(t *testing.T) {
	req := validCreateReq()
	m := req.ToModel("Ustad Hasan", uuid.New(), "Admin")
	origSchedule := m.ClassScheduleDays

	newName := "Kelas 7B"
	upd := UpdateClassRequest{ClassName: &newName}
	updatedBy := uuid.New()
	upd.ApplyToModel(m, updatedBy, "Admin Dua")

	assert.Equal(t, "Kelas 7B", m.ClassName)
	assert.Equal(t, origSchedule, m.ClassScheduleDays, "jadwal tidak boleh berubah")
	require.NotNil(t, m.ClassUpdatedAt)
	assert.Equal(t, updatedBy, *m.ClassUpdatedBy)
}

func TestNewClassResponse_StudentCount(t *testing.T) {
	req := validCreateReq()
	req.StudentIDs = []string{"a", "b", "c"}
	m := req.ToModel("Ustad Hasan", uuid.New(), "Admin")

	resp := NewClassResponse(m)

	assert.Equal(t, 3, resp.StudentCount)
	assert.Equal(t, len(resp.StudentIDs), resp.StudentCount)
}
