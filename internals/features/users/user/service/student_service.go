// file: internals/features/users/user/service/student_service.go
package service

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/constants"
	"pesantrenku_backend/internals/features/users/user/model"
)

/* =========================================================
   Canonical Student
   =========================================================
   Santri bisa tersimpan dua bentuk:
   1) baris users dengan role santri (format baru)
   2) tertanam di parent_profiles.children (format legacy)
   Semua pembacaan dinormalisasi ke bentuk ini dulu; kedua bentuk
   tidak boleh ikut perbandingan/filter tanpa lewat sini.
*/

type Student struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email,omitempty"`
	NIS       string     `json:"nis,omitempty"`
	EntryYear int        `json:"entry_year,omitempty"`
	Status    string     `json:"status"`
	ParentID  *uuid.UUID `json:"parent_id,omitempty"` // terisi hanya untuk format legacy
}

// embeddedChild: bentuk mentah di parent_profiles.children (JSONB)
type embeddedChild struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	NIS       string `json:"nis"`
	EntryYear int    `json:"entry_year"`
	Status    string `json:"status"`
}

func normalizeUserRow(u model.UserModel) Student {
	s := Student{
		ID:     u.ID.String(),
		Name:   u.UserName,
		Email:  u.Email,
		Status: u.Status,
	}
	if u.NIS != nil {
		s.NIS = *u.NIS
	}
	if u.EntryYear != nil {
		s.EntryYear = *u.EntryYear
	}
	if s.Status == "" {
		s.Status = "active"
	}
	return s
}

func normalizeEmbedded(parentUserID uuid.UUID, c embeddedChild) Student {
	pid := parentUserID
	s := Student{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		NIS:       c.NIS,
		EntryYear: c.EntryYear,
		Status:    c.Status,
		ParentID:  &pid,
	}
	if s.Status == "" {
		s.Status = "active"
	}
	return s
}

func backfillParent(s *Student, parentUserID uuid.UUID) {
	if s.ParentID == nil {
		pid := parentUserID
		s.ParentID = &pid
	}
}

// ReconcileStudents menggabungkan kedua format jadi satu daftar kanonik.
// Duplikat (id atau NIS sama) dimenangkan baris users; urutan hasil
// deterministik (nama, lalu id).
func ReconcileStudents(users []model.UserModel, parents []model.ParentProfileModel) []Student {
	out := make([]Student, 0, len(users))
	seenID := make(map[string]int)
	seenNIS := make(map[string]int)

	for _, u := range users {
		if u.Role != constants.RoleSantri {
			continue
		}
		s := normalizeUserRow(u)
		out = append(out, s)
		idx := len(out) - 1
		seenID[s.ID] = idx
		if s.NIS != "" {
			seenNIS[s.NIS] = idx
		}
	}

	for _, p := range parents {
		if len(p.ParentProfileChildren) == 0 {
			continue
		}
		var children []embeddedChild
		if err := json.Unmarshal(p.ParentProfileChildren, &children); err != nil {
			// payload legacy rusak: lewati record ini, jangan gagalkan pembacaan
			continue
		}
		for _, c := range children {
			if c.ID == "" && c.NIS == "" {
				continue
			}
			// duplikat: data menang baris users, tapi tautan orangtua
			// hanya ada di format legacy, jadi di-backfill ke pemenang
			if idx, dup := seenID[c.ID]; dup {
				backfillParent(&out[idx], p.ParentProfileUserID)
				continue
			}
			if c.NIS != "" {
				if idx, dup := seenNIS[c.NIS]; dup {
					backfillParent(&out[idx], p.ParentProfileUserID)
					continue
				}
			}
			s := normalizeEmbedded(p.ParentProfileUserID, c)
			out = append(out, s)
			idx := len(out) - 1
			seenID[s.ID] = idx
			if s.NIS != "" {
				seenNIS[s.NIS] = idx
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

/* =========================================================
   Filter & pagination (in-memory, setelah reconcile)
   ========================================================= */

type StudentFilter struct {
	EntryYear string // "all" / kosong = semua; selain itu exact match
	Status    string // "all" / kosong = semua; selain itu exact match
	Search    string // substring case-insensitive atas name & email
}

// FilterStudents: filter dipassing eksplisit, bukan state ambient.
func FilterStudents(students []Student, f StudentFilter) []Student {
	year := strings.TrimSpace(f.EntryYear)
	status := strings.TrimSpace(f.Status)
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]Student, 0, len(students))
	for _, s := range students {
		if year != "" && year != "all" {
			if yearOf(s) != year {
				continue
			}
		}
		if status != "" && status != "all" && s.Status != status {
			continue
		}
		if search != "" {
			name := strings.ToLower(s.Name)
			email := strings.ToLower(s.Email)
			if !strings.Contains(name, search) && !strings.Contains(email, search) {
				continue
			}
		}
		out = append(out, s)
	}
	return out
}

func yearOf(s Student) string {
	if s.EntryYear == 0 {
		return ""
	}
	return strconv.Itoa(s.EntryYear)
}

// PaginateStudents: total dihitung atas set TERFILTER sebelum slicing.
func PaginateStudents(filtered []Student, page, limit int) (pageItems []Student, total int) {
	total = len(filtered)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}
	start := (page - 1) * limit
	if start >= total {
		return []Student{}, total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return filtered[start:end], total
}

/* =========================================================
   DB loader
   ========================================================= */

// LoadAllStudents membaca kedua sumber lalu reconcile.
// Full scan memang disengaja mengikuti desain asal (filter role di aplikasi).
func LoadAllStudents(db *gorm.DB) ([]Student, error) {
	var users []model.UserModel
	if err := db.Where("role = ? AND is_active = TRUE", constants.RoleSantri).Find(&users).Error; err != nil {
		return nil, err
	}
	var parents []model.ParentProfileModel
	if err := db.Where("parent_profile_children IS NOT NULL").Find(&parents).Error; err != nil {
		return nil, err
	}
	return ReconcileStudents(users, parents), nil
}

// FindStudentsByIDs memvalidasi daftar id santri terhadap daftar kanonik.
// Mengembalikan map id -> Student untuk yang ketemu, plus daftar id hilang.
func FindStudentsByIDs(db *gorm.DB, ids []string) (map[string]Student, []string, error) {
	all, err := LoadAllStudents(db)
	if err != nil {
		return nil, nil, err
	}
	byID := make(map[string]Student, len(all))
	for _, s := range all {
		byID[s.ID] = s
	}
	found := make(map[string]Student, len(ids))
	var missing []string
	for _, id := range ids {
		if s, ok := byID[id]; ok {
			found[id] = s
		} else {
			missing = append(missing, id)
		}
	}
	return found, missing, nil
}
