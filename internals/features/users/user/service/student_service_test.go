package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"pesantrenku_backend/internals/constants"
	"pesantrenku_backend/internals/features/users/user/model"
)

func santriRow(name, email, nis string, year int, status string) model.UserModel {
	n, y := nis, year
	return model.UserModel{
		ID:        uuid.New(),
		UserName:  name,
		Email:     email,
		Role:      constants.RoleSantri,
		NIS:       &n,
		EntryYear: &y,
		Status:    status,
		IsActive:  true,
	}
}

func parentWithChildren(childrenJSON string) model.ParentProfileModel {
	return model.ParentProfileModel{
		ParentProfileID:       uuid.New(),
		ParentProfileUserID:   uuid.New(),
		ParentProfileChildren: datatypes.JSON([]byte(childrenJSON)),
	}
}

func TestReconcileStudents_MergesBothFormats(t *testing.T) {
	u := santriRow("Ahmad", "ahmad@pesantren.id", "1001", 2023, "active")
	p := parentWithChildren(`[{"id":"legacy-1","name":"Budi","nis":"1002","entry_year":2022,"status":"active"}]`)

	out := ReconcileStudents([]model.UserModel{u}, []model.ParentProfileModel{p})

	require.Len(t, out, 2)
	// urutan deterministik by name
	assert.Equal(t, "Ahmad", out[0].Name)
	assert.Equal(t, "Budi", out[1].Name)
	assert.Nil(t, out[0].ParentID)
	require.NotNil(t, out[1].ParentID)
	assert.Equal(t, p.ParentProfileUserID, *out[1].ParentID)
}

func TestReconcileStudents_TopLevelWinsOnDuplicateNIS(t *testing.T) {
	u := santriRow("Ahmad", "ahmad@pesantren.id", "1001", 2023, "active")
	// anak legacy dengan NIS sama: harus kalah dari baris users
	p := parentWithChildren(`[{"id":"legacy-dup","name":"Ahmad Lama","nis":"1001","entry_year":2020,"status":"inactive"}]`)

	out := ReconcileStudents([]model.UserModel{u}, []model.ParentProfileModel{p})

	require.Len(t, out, 1)
	assert.Equal(t, u.ID.String(), out[0].ID)
	assert.Equal(t, "Ahmad", out[0].Name)
	assert.Equal(t, "active", out[0].Status)
	// tautan orangtua cuma ada di format legacy: ikut terbawa ke pemenang
	require.NotNil(t, out[0].ParentID)
	assert.Equal(t, p.ParentProfileUserID, *out[0].ParentID)
}

func TestReconcileStudents_SkipsBrokenLegacyPayload(t *testing.T) {
	p := parentWithChildren(`{"bukan":"array"}`)
	out := ReconcileStudents(nil, []model.ParentProfileModel{p})
	assert.Empty(t, out)
}

func TestReconcileStudents_IgnoresNonSantriRows(t *testing.T) {
	admin := model.UserModel{ID: uuid.New(), UserName: "Admin", Email: "a@x.id", Role: constants.RoleAdmin, IsActive: true}
	out := ReconcileStudents([]model.UserModel{admin}, nil)
	assert.Empty(t, out)
}

func TestFilterStudents(t *testing.T) {
	students := []Student{
		{ID: "1", Name: "Ahmad Fauzi", Email: "ahmad@pesantren.id", EntryYear: 2023, Status: "active"},
		{ID: "2", Name: "Budi Santoso", Email: "budi@pesantren.id", EntryYear: 2022, Status: "active"},
		{ID: "3", Name: "Citra Lestari", Email: "citra@pesantren.id", EntryYear: 2023, Status: "inactive"},
	}

	tests := []struct {
		name    string
		filter  StudentFilter
		wantIDs []string
	}{
		{name: "no filter", filter: StudentFilter{}, wantIDs: []string{"1", "2", "3"}},
		{name: "all keywords", filter: StudentFilter{EntryYear: "all", Status: "all"}, wantIDs: []string{"1", "2", "3"}},
		{name: "entry year", filter: StudentFilter{EntryYear: "2023"}, wantIDs: []string{"1", "3"}},
		{name: "status", filter: StudentFilter{Status: "inactive"}, wantIDs: []string{"3"}},
		{name: "search name case-insensitive", filter: StudentFilter{Search: "ahmad"}, wantIDs: []string{"1"}},
		{name: "search email", filter: StudentFilter{Search: "BUDI@"}, wantIDs: []string{"2"}},
		{name: "combined", filter: StudentFilter{EntryYear: "2023", Status: "active"}, wantIDs: []string{"1"}},
		{name: "no match", filter: StudentFilter{Search: "zzz"}, wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterStudents(students, tt.filter)
			ids := make([]string, 0, len(got))
			for _, s := range got {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestPaginateStudents_TotalComputedBeforePaging(t *testing.T) {
	students := make([]Student, 0, 7)
	for i := 0; i < 7; i++ {
		students = append(students, Student{ID: string(rune('a' + i))})
	}

	page, total := PaginateStudents(students, 2, 3)
	assert.Equal(t, 7, total)
	require.Len(t, page, 3)
	assert.Equal(t, "d", page[0].ID)

	// halaman di luar jangkauan tetap mengembalikan total penuh
	page, total = PaginateStudents(students, 5, 3)
	assert.Equal(t, 7, total)
	assert.Empty(t, page)
}
