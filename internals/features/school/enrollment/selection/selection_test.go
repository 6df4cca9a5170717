package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddVisible_UnionNotReplace(t *testing.T) {
	s := New()
	s.Add("x")

	s.AddVisible([]string{"a", "b"})

	assert.Equal(t, []string{"a", "b", "x"}, s.IDs())
}

func TestRemoveVisible_SetDifference(t *testing.T) {
	s := New()
	s.AddVisible([]string{"a", "b", "c"})

	s.RemoveVisible([]string{"b", "c", "tidak-ada"})

	assert.Equal(t, []string{"a"}, s.IDs())
}

func TestReplaceWithFiltered_DropsPreviousFilterIDs(t *testing.T) {
	s := New()
	// "pilih semua hasil filter" dengan status=active
	s.ReplaceWithFiltered([]string{"aktif-1", "aktif-2"})
	assert.Equal(t, 2, s.Len())

	// ganti filter ke status=inactive lalu ulangi: id lama harus hilang
	s.ReplaceWithFiltered([]string{"nonaktif-1"})

	assert.Equal(t, []string{"nonaktif-1"}, s.IDs())
	assert.False(t, s.Contains("aktif-1"))
}

func TestClearAndValidity(t *testing.T) {
	s := New()
	assert.False(t, s.IsValid(), "seleksi kosong tidak sah")

	s.Add("a")
	assert.True(t, s.IsValid())

	s.Clear()
	assert.False(t, s.IsValid())
	assert.Empty(t, s.IDs())
}

func TestAddIgnoresEmptyID(t *testing.T) {
	s := New()
	s.Add("")
	s.AddVisible([]string{"", "a"})
	assert.Equal(t, []string{"a"}, s.IDs())
}
