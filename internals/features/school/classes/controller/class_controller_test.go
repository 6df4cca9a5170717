package controller

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"pesantrenku_backend/internals/features/school/classes/dto"
)

func sPtr(s string) *string { return &s }

func TestPlanUpdate(t *testing.T) {
	currentUstad := uuid.New()
	otherUstad := uuid.New()

	tests := []struct {
		name              string
		req               dto.UpdateClassRequest
		wantLock          bool
		wantConflictCheck bool
		wantTripleCheck   bool
	}{
		{
			name:            "name only masih butuh lock untuk cek triple",
			req:             dto.UpdateClassRequest{ClassName: sPtr("Kelas 8B")},
			wantLock:        true,
			wantTripleCheck: true,
		},
		{
			name:            "academic year only masih butuh lock untuk cek triple",
			req:             dto.UpdateClassRequest{AcademicYear: sPtr("2027/2028")},
			wantLock:        true,
			wantTripleCheck: true,
		},
		{
			name:              "schedule only: lock + cek bentrok",
			req:               dto.UpdateClassRequest{Schedule: &dto.ScheduleDTO{Days: []string{"Senin"}, StartTime: "08:00", EndTime: "09:00"}},
			wantLock:          true,
			wantConflictCheck: true,
		},
		{
			name:              "ganti ustad: lock + cek bentrok + cek triple",
			req:               dto.UpdateClassRequest{UstadID: &otherUstad},
			wantLock:          true,
			wantConflictCheck: true,
			wantTripleCheck:   true,
		},
		{
			name: "ustad id dikirim tapi sama: bukan perubahan",
			req:  dto.UpdateClassRequest{UstadID: &currentUstad},
		},
		{
			name: "status only: tanpa cek terserialisasi",
			req:  dto.UpdateClassRequest{Status: sPtr("active")},
		},
		{
			name: "student ids only: tanpa cek terserialisasi",
			req:  dto.UpdateClassRequest{StudentIDs: []string{"santri-1"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := planUpdate(&tt.req, currentUstad)
			assert.Equal(t, tt.wantLock, p.NeedsLock())
			assert.Equal(t, tt.wantConflictCheck, p.NeedsConflictCheck())
			assert.Equal(t, tt.wantTripleCheck, p.TripleChanged)
		})
	}
}
