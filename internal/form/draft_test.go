package form

import (
	"testing"

	"bukuku/internal/book"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() Draft {
	d := NewDraft()
	d.Title = "Dune"
	d.Author = "Frank Herbert"
	return d
}

func TestNewDraft_Defaults(t *testing.T) {
	d := NewDraft()
	assert.Equal(t, book.GenreFiksi, d.Genre)
	assert.Equal(t, book.StatusBelumDibaca, d.Status)
	assert.False(t, d.IsEdit())
}

func TestFinalize_CoercesNumericText(t *testing.T) {
	d := validDraft()
	d.Year = "2024"
	d.Pages = "412"
	d.Rating = "5"

	b, err := d.Finalize()
	require.NoError(t, err)

	assert.Equal(t, 2024, b.Year)
	assert.Equal(t, 412, b.Pages)
	assert.Equal(t, 5, b.Rating)
}

func TestFinalize_EmptyNumericStaysUnset(t *testing.T) {
	d := validDraft()
	d.Year = ""
	d.Pages = "   "

	b, err := d.Finalize()
	require.NoError(t, err)

	assert.Zero(t, b.Year, "empty year must not become 0-as-a-value; omitempty drops it")
	assert.Zero(t, b.Pages)
	assert.Zero(t, b.Rating)
}

func TestFinalize_MalformedNumberIsValidationError(t *testing.T) {
	d := validDraft()
	d.Year = "MMXXIV"

	_, err := d.Finalize()
	require.ErrorIs(t, err, ErrValidation)
}

func TestFinalize_RequiredFields(t *testing.T) {
	d := NewDraft()
	d.Title = ""
	d.Author = "Somebody"
	_, err := d.Finalize()
	require.ErrorIs(t, err, ErrValidation)

	d.Title = "Something"
	d.Author = "   "
	_, err = d.Finalize()
	require.ErrorIs(t, err, ErrValidation, "whitespace-only author is empty after trimming")
}

func TestFinalize_RatingRange(t *testing.T) {
	for _, bad := range []string{"0", "6", "-1"} {
		d := validDraft()
		d.Rating = bad
		_, err := d.Finalize()
		require.ErrorIs(t, err, ErrValidation, "rating %s", bad)
	}

	for _, ok := range []string{"1", "3", "5", ""} {
		d := validDraft()
		d.Rating = ok
		_, err := d.Finalize()
		require.NoError(t, err, "rating %s", ok)
	}
}

func TestFinalize_UnknownEnumsRejected(t *testing.T) {
	d := validDraft()
	d.Genre = "puisi"
	_, err := d.Finalize()
	require.ErrorIs(t, err, ErrValidation)

	d = validDraft()
	d.Status = "semua"
	_, err = d.Finalize()
	require.ErrorIs(t, err, ErrValidation)
}

func TestDraftFrom_RoundTripsFields(t *testing.T) {
	b := book.Book{
		ID:       "42",
		Title:    "Bumi Manusia",
		Author:   "Pramoedya Ananta Toer",
		Genre:    book.GenreSejarah,
		Status:   book.StatusFavorit,
		Year:     1980,
		Rating:   5,
		EbookURI: "users/2026/2/3/x.epub",
	}

	d := DraftFrom(b)
	require.True(t, d.IsEdit())
	assert.Equal(t, "1980", d.Year)
	assert.Equal(t, "", d.Pages, "unset numeric stays empty text")
	assert.Equal(t, "5", d.Rating)

	got, err := d.Finalize()
	require.NoError(t, err)
	assert.Equal(t, b, got)
}
