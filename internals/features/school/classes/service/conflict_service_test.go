package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pesantrenku_backend/internals/features/school/classes/model"
)

func kelas(name string, days []string, start, end string) model.ClassModel {
	return model.ClassModel{
		ClassID:           uuid.New(),
		ClassName:         name,
		ClassScheduleDays: pq.StringArray(days),
		ClassStartTime:    start,
		ClassEndTime:      end,
		ClassStatus:       "active",
	}
}

func TestTimeRangesOverlap(t *testing.T) {
	tests := []struct {
		name                         string
		aStart, aEnd, bStart, bEnd   string
		want                         bool
	}{
		{name: "identical", aStart: "08:00", aEnd: "09:00", bStart: "08:00", bEnd: "09:00", want: true},
		{name: "partial overlap", aStart: "08:30", aEnd: "09:30", bStart: "08:00", bEnd: "09:00", want: true},
		{name: "contained", aStart: "08:15", aEnd: "08:45", bStart: "08:00", bEnd: "09:00", want: true},
		{name: "touching end-start", aStart: "09:00", aEnd: "10:00", bStart: "08:00", bEnd: "09:00", want: false},
		{name: "touching start-end", aStart: "07:00", aEnd: "08:00", bStart: "08:00", bEnd: "09:00", want: false},
		{name: "disjoint", aStart: "10:00", aEnd: "11:00", bStart: "08:00", bEnd: "09:00", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TimeRangesOverlap(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
		})
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"00:00", "08:05", "23:59"}
	invalid := []string{"24:00", "8:00", "08:60", "0800", "", "08:0"}
	for _, v := range valid {
		assert.True(t, IsValidClock(v), v)
	}
	for _, v := range invalid {
		assert.False(t, IsValidClock(v), v)
	}
}

func TestCheckConflictAgainst_NoClassesNoConflict(t *testing.T) {
	res := CheckConflictAgainst(nil, ProposedSchedule{Days: []string{"Senin"}, StartTime: "08:00", EndTime: "09:00"}, nil)
	assert.False(t, res.Conflict)
}

func TestCheckConflictAgainst_OverlapSameDay(t *testing.T) {
	existing := []model.ClassModel{kelas("Kelas 7A", []string{"Senin"}, "08:00", "09:00")}

	res := CheckConflictAgainst(existing, ProposedSchedule{
		Days: []string{"Senin"}, StartTime: "08:30", EndTime: "09:30",
	}, nil)

	require.True(t, res.Conflict)
	assert.Equal(t, "Kelas 7A", res.ClassName)
	assert.Equal(t, []string{"Senin"}, res.ConflictDays)
	assert.Equal(t, "08:00", res.ConflictStart)
	assert.Equal(t, "09:00", res.ConflictEnd)
}

func TestCheckConflictAgainst_TouchingIntervalsAllowed(t *testing.T) {
	existing := []model.ClassModel{kelas("Kelas 7A", []string{"Senin"}, "08:00", "09:00")}

	res := CheckConflictAgainst(existing, ProposedSchedule{
		Days: []string{"Senin"}, StartTime: "09:00", EndTime: "10:00",
	}, nil)

	assert.False(t, res.Conflict)
}

func TestCheckConflictAgainst_DisjointDaysAllowed(t *testing.T) {
	existing := []model.ClassModel{kelas("Kelas 7A", []string{"Senin", "Rabu"}, "08:00", "09:00")}

	res := CheckConflictAgainst(existing, ProposedSchedule{
		Days: []string{"Selasa", "Kamis"}, StartTime: "08:00", EndTime: "09:00",
	}, nil)

	assert.False(t, res.Conflict)
}

func TestCheckConflictAgainst_InactiveClassStillBlocks(t *testing.T) {
	// status tidak mengecualikan kelas dari cek bentrok: kelas nonaktif
	// yang nanti diaktifkan lagi tidak boleh tumpang tindih dengan kelas
	// yang dibuat selagi ia nonaktif
	dormant := kelas("Kelas 7A", []string{"Senin"}, "08:00", "09:00")
	dormant.ClassStatus = "inactive"

	res := CheckConflictAgainst([]model.ClassModel{dormant}, ProposedSchedule{
		Days: []string{"Senin"}, StartTime: "08:30", EndTime: "09:30",
	}, nil)

	require.True(t, res.Conflict)
	assert.Equal(t, "Kelas 7A", res.ClassName)
}

func TestCheckConflictAgainst_ExcludeOwnClassOnEdit(t *testing.T) {
	own := kelas("Kelas 7A", []string{"Senin"}, "08:00", "09:00")

	res := CheckConflictAgainst([]model.ClassModel{own}, ProposedSchedule{
		Days: []string{"Senin"}, StartTime: "08:00", EndTime: "09:00",
	}, &own.ClassID)

	assert.False(t, res.Conflict)
}

func TestCheckConflictAgainst_FirstMatchWins(t *testing.T) {
	existing := []model.ClassModel{
		kelas("Kelas Tahfidz", []string{"Senin"}, "08:00", "10:00"),
		kelas("Kelas Fiqih", []string{"Senin"}, "09:00", "11:00"),
	}

	res := CheckConflictAgainst(existing, ProposedSchedule{
		Days: []string{"Senin"}, StartTime: "09:30", EndTime: "09:45",
	}, nil)

	require.True(t, res.Conflict)
	assert.Equal(t, "Kelas Tahfidz", res.ClassName)
}

func TestIntersectDays(t *testing.T) {
	assert.Equal(t, []string{"Senin", "Rabu"},
		IntersectDays([]string{"Senin", "Rabu", "Jumat"}, []string{"Rabu", "Senin"}))
	assert.Empty(t, IntersectDays([]string{"Senin"}, []string{"Selasa"}))
}
