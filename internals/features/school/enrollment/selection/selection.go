// file: internals/features/school/enrollment/selection/selection.go
package selection

import "sort"

// Selection adalah himpunan id santri yang dipilih di wizard, independen
// dari halaman yang sedang tampil. Dua aksi bulk-nya beda semantik dan
// tidak boleh disamakan:
//   - AddVisible: union dengan id halaman saat ini
//   - ReplaceWithFiltered: REPLACE dengan seluruh hasil filter (bukan union)
type Selection struct {
	ids map[string]struct{}
}

func New() *Selection {
	return &Selection{ids: make(map[string]struct{})}
}

// Add menambahkan satu id.
func (s *Selection) Add(id string) {
	if id == "" {
		return
	}
	s.ids[id] = struct{}{}
}

// Remove menghapus satu id.
func (s *Selection) Remove(id string) {
	delete(s.ids, id)
}

// AddVisible: "pilih semua yang tampil" — union id halaman saat ini.
func (s *Selection) AddVisible(visibleIDs []string) {
	for _, id := range visibleIDs {
		s.Add(id)
	}
}

// RemoveVisible: "batalkan semua yang tampil" — set-difference terhadap
// id halaman saat ini.
func (s *Selection) RemoveVisible(visibleIDs []string) {
	for _, id := range visibleIDs {
		delete(s.ids, id)
	}
}

// ReplaceWithFiltered: "pilih semua hasil filter" — seleksi lama DIBUANG,
// diganti seluruh id hasil filter penuh (tanpa pagination). Id dari filter
// sebelumnya tidak boleh tersisa.
func (s *Selection) ReplaceWithFiltered(filteredIDs []string) {
	s.ids = make(map[string]struct{}, len(filteredIDs))
	for _, id := range filteredIDs {
		s.Add(id)
	}
}

// Clear mengosongkan seleksi.
func (s *Selection) Clear() {
	s.ids = make(map[string]struct{})
}

func (s *Selection) Contains(id string) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *Selection) Len() int {
	return len(s.ids)
}

// IsValid: seleksi sah untuk submit iff tidak kosong.
func (s *Selection) IsValid() bool {
	return len(s.ids) > 0
}

// IDs mengembalikan isi seleksi terurut (deterministik untuk payload).
func (s *Selection) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
