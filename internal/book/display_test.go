package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMeta_KnownValues(t *testing.T) {
	tests := []struct {
		status Status
		label  string
		icon   string
	}{
		{StatusBelumDibaca, "Belum Dibaca", "clock"},
		{StatusSedangDibaca, "Sedang Dibaca", "book-open"},
		{StatusSudahDibaca, "Sudah Dibaca", "check-circle"},
		{StatusFavorit, "Favorit", "heart"},
	}

	for _, tt := range tests {
		m := StatusMeta(tt.status)
		assert.Equal(t, tt.label, m.Label)
		assert.Equal(t, tt.icon, m.Icon)
		assert.NotEmpty(t, m.Class)
	}
}

func TestStatusMeta_UnknownFallsBackToBelumDibaca(t *testing.T) {
	m := StatusMeta(Status("dipinjam_teman"))
	assert.Equal(t, "Belum Dibaca", m.Label)
	assert.Equal(t, "clock", m.Icon)
}

func TestGenreClass_UnknownGetsNeutralClass(t *testing.T) {
	assert.NotEmpty(t, GenreClass(GenreFantasi))
	assert.NotEqual(t, GenreClass(GenreFantasi), GenreClass(Genre("puisi")))
	assert.Equal(t, "bg-gray-50 text-gray-700", GenreClass(Genre("puisi")))
}

func TestValidStatusAndGenre(t *testing.T) {
	for _, s := range Statuses() {
		assert.True(t, ValidStatus(s))
	}
	assert.False(t, ValidStatus("semua"), "the sentinel is not a status")
	assert.False(t, ValidStatus(""))

	for _, g := range Genres() {
		assert.True(t, ValidGenre(g))
	}
	assert.False(t, ValidGenre("semua"))
	assert.Len(t, Genres(), 16)
}

func TestHasEbook(t *testing.T) {
	assert.False(t, Book{}.HasEbook())
	assert.True(t, Book{EbookURI: "users/2026/1/2/abc.epub"}.HasEbook())
}
