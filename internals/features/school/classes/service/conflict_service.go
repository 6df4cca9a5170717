// file: internals/features/school/classes/service/conflict_service.go
package service

import (
	"regexp"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/school/classes/model"
)

/* =========================================================
   Conflict Checker
   =========================================================
   Deteksi bentrok jadwal antar kelas yang diampu ustad yang sama:
   irisan hari tidak kosong DAN interval waktu overlap. Interval
   half-open [start, end): jam yang bersentuhan (end == start) TIDAK
   dianggap bentrok.
*/

type ProposedSchedule struct {
	Days      []string
	StartTime string // "HH:MM"
	EndTime   string // "HH:MM"
}

type ConflictResult struct {
	Conflict      bool     `json:"conflict"`
	ClassID       string   `json:"class_id,omitempty"`
	ClassName     string   `json:"class_name,omitempty"`
	ConflictDays  []string `json:"conflict_days,omitempty"`
	ConflictStart string   `json:"conflict_start,omitempty"`
	ConflictEnd   string   `json:"conflict_end,omitempty"`
}

var clockRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// IsValidClock: "HH:MM" 24 jam, zero-padded. Perbandingan leksikografis
// hanya sah kalau kedua sisi lolos format ini.
func IsValidClock(s string) bool {
	return clockRe.MatchString(s)
}

// TimeRangesOverlap: overlap half-open. Valid karena "HH:MM" zero-padded
// sehingga perbandingan string == perbandingan waktu.
func TimeRangesOverlap(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && aEnd > bStart
}

// IntersectDays mengembalikan irisan dua himpunan hari (urutan mengikuti a).
func IntersectDays(a, b []string) []string {
	set := make(map[string]struct{}, len(b))
	for _, d := range b {
		set[d] = struct{}{}
	}
	var out []string
	for _, d := range a {
		if _, ok := set[d]; ok {
			out = append(out, d)
		}
	}
	return out
}

// CheckConflictAgainst memindai daftar kelas (sudah milik satu ustad) dan
// mengembalikan bentrokan PERTAMA. Ustad tanpa kelas => tidak bentrok.
func CheckConflictAgainst(classes []model.ClassModel, proposed ProposedSchedule, excludeClassID *uuid.UUID) ConflictResult {
	for i := range classes {
		cls := &classes[i]
		if excludeClassID != nil && cls.ClassID == *excludeClassID {
			continue
		}
		days := IntersectDays(proposed.Days, []string(cls.ClassScheduleDays))
		if len(days) == 0 {
			continue
		}
		if TimeRangesOverlap(proposed.StartTime, proposed.EndTime, cls.ClassStartTime, cls.ClassEndTime) {
			return ConflictResult{
				Conflict:      true,
				ClassID:       cls.ClassID.String(),
				ClassName:     cls.ClassName,
				ConflictDays:  days,
				ConflictStart: cls.ClassStartTime,
				ConflictEnd:   cls.ClassEndTime,
			}
		}
	}
	return ConflictResult{Conflict: false}
}

// CheckScheduleConflict memuat SEMUA kelas milik ustad (apapun statusnya)
// lalu memindai. Kelas nonaktif tetap ikut dihitung: kalau tidak, kelas
// yang dinonaktifkan lalu diaktifkan lagi bisa lolos tumpang tindih dengan
// kelas yang dibuat di antaranya. Pemanggil yang butuh jaminan anti-race
// WAJIB memanggil ini di dalam transaksi yang memegang LockUstadSchedule.
func CheckScheduleConflict(db *gorm.DB, ustadID uuid.UUID, proposed ProposedSchedule, excludeClassID *uuid.UUID) (ConflictResult, error) {
	var classes []model.ClassModel
	if err := db.
		Where("class_ustad_id = ?", ustadID).
		Find(&classes).Error; err != nil {
		return ConflictResult{}, err
	}
	return CheckConflictAgainst(classes, proposed, excludeClassID), nil
}

// LockUstadSchedule mengambil advisory lock per-ustad selama transaksi
// berjalan. Menutup race check-then-write: dua create bersamaan untuk ustad
// yang sama akan diserialisasi sebelum pengecekan bentrok/duplikat.
func LockUstadSchedule(tx *gorm.DB, ustadID uuid.UUID) error {
	return tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", ustadID.String()).Error
}
