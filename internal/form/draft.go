// Package form turns raw editable form state into a persistable Book and
// drives the save: numeric coercion, validation, optional e-book upload, and
// the create-or-update call.
package form

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"bukuku/internal/book"

	"github.com/go-playground/validator/v10"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrUploadFailed = errors.New("e-book upload failed")
)

var validate = validator.New()

// Draft is the editable copy of a book. Numeric fields stay text until
// Finalize so an empty input is distinguishable from zero.
type Draft struct {
	ID     string // empty means create mode
	Title  string
	Author string
	Genre  book.Genre
	Status book.Status

	Year   string
	Pages  string
	Rating string

	Publisher   string
	ISBN        string
	Description string
	Notes       string
	CoverURL    string
	EbookURI    string

	// EbookPath is a locally selected file to upload before saving.
	// Empty means no new attachment; any existing EbookURI is kept.
	EbookPath string
}

// NewDraft returns the create-mode defaults.
func NewDraft() Draft {
	return Draft{Genre: book.GenreFiksi, Status: book.StatusBelumDibaca}
}

// DraftFrom seeds an edit-mode draft from an existing record.
func DraftFrom(b book.Book) Draft {
	d := Draft{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Genre:       b.Genre,
		Status:      b.Status,
		Publisher:   b.Publisher,
		ISBN:        b.ISBN,
		Description: b.Description,
		Notes:       b.Notes,
		CoverURL:    b.CoverURL,
		EbookURI:    b.EbookURI,
	}
	if b.Year != 0 {
		d.Year = strconv.Itoa(b.Year)
	}
	if b.Pages != 0 {
		d.Pages = strconv.Itoa(b.Pages)
	}
	if b.Rating != 0 {
		d.Rating = strconv.Itoa(b.Rating)
	}
	return d
}

// IsEdit reports whether the draft targets an existing record.
func (d Draft) IsEdit() bool {
	return d.ID != ""
}

// Finalize converts the draft into a persistable Book. Non-empty numeric
// text is coerced to int; empty stays unset. Malformed numbers and
// constraint violations return ErrValidation.
func (d Draft) Finalize() (book.Book, error) {
	b := book.Book{
		ID:          d.ID,
		Title:       strings.TrimSpace(d.Title),
		Author:      strings.TrimSpace(d.Author),
		Genre:       d.Genre,
		Status:      d.Status,
		Publisher:   d.Publisher,
		ISBN:        d.ISBN,
		Description: d.Description,
		Notes:       d.Notes,
		CoverURL:    d.CoverURL,
		EbookURI:    d.EbookURI,
	}

	var err error
	if b.Year, err = coerceInt(d.Year, "year"); err != nil {
		return book.Book{}, err
	}
	if b.Pages, err = coerceInt(d.Pages, "pages"); err != nil {
		return book.Book{}, err
	}
	if b.Rating, err = coerceInt(d.Rating, "rating"); err != nil {
		return book.Book{}, err
	}

	if !book.ValidGenre(b.Genre) {
		return book.Book{}, fmt.Errorf("%w: unknown genre %q", ErrValidation, b.Genre)
	}
	if !book.ValidStatus(b.Status) {
		return book.Book{}, fmt.Errorf("%w: unknown status %q", ErrValidation, b.Status)
	}

	if err := validate.Struct(b); err != nil {
		return book.Book{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	return b, nil
}

func coerceInt(s, field string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number, got %q", ErrValidation, field, s)
	}
	return n, nil
}
