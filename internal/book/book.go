// Package book defines the Book record, its closed status/genre sets, the
// display metadata keyed by them, and the pure filter/stats engine that
// operates on an in-memory book list.
package book

// Status is the reading status of a book. The set is closed; values outside
// it are rendered with the StatusBelumDibaca metadata.
type Status string

const (
	StatusBelumDibaca  Status = "belum_dibaca"
	StatusSedangDibaca Status = "sedang_dibaca"
	StatusSudahDibaca  Status = "sudah_dibaca"
	StatusFavorit      Status = "favorit"
)

// Genre is the book genre. The set is closed; unknown values get a neutral
// style class.
type Genre string

const (
	GenreFiksi       Genre = "fiksi"
	GenreNonFiksi    Genre = "non-fiksi"
	GenreMisteri     Genre = "misteri"
	GenreRomantis    Genre = "romantis"
	GenreFantasi     Genre = "fantasi"
	GenreSejarah     Genre = "sejarah"
	GenreBiografi    Genre = "biografi"
	GenreSains       Genre = "sains"
	GenreTeknologi   Genre = "teknologi"
	GenreBisnis      Genre = "bisnis"
	GenreSelfHelp    Genre = "self-help"
	GenreHoror       Genre = "horor"
	GenreThriller    Genre = "thriller"
	GenreKomedi      Genre = "komedi"
	GenreDrama       Genre = "drama"
	GenrePetualangan Genre = "petualangan"
)

// Book is the record managed by the remote gateway. The id and the
// timestamps are assigned server-side; the client never generates them.
// Optional numeric fields use omitempty so an unset value is never
// persisted as 0.
type Book struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title" validate:"required"`
	Author      string `json:"author" validate:"required"`
	Genre       Genre  `json:"genre"`
	Status      Status `json:"status"`
	Year        int    `json:"year,omitempty" validate:"omitempty,min=0"`
	Pages       int    `json:"pages,omitempty" validate:"omitempty,min=0"`
	Rating      int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Publisher   string `json:"publisher,omitempty"`
	ISBN        string `json:"isbn,omitempty"`
	Description string `json:"description,omitempty"`
	Notes       string `json:"notes,omitempty"`
	CoverURL    string `json:"cover_url,omitempty"`
	EbookURI    string `json:"ebook_uri,omitempty"`
	CreatedDate string `json:"created_date,omitempty"`
	UpdatedDate string `json:"updated_date,omitempty"`
}

// HasEbook reports whether an e-book file is attached to the record.
func (b Book) HasEbook() bool {
	return b.EbookURI != ""
}

// Statuses returns the closed status set in display order.
func Statuses() []Status {
	return []Status{StatusBelumDibaca, StatusSedangDibaca, StatusSudahDibaca, StatusFavorit}
}

// Genres returns the closed genre set in display order.
func Genres() []Genre {
	return []Genre{
		GenreFiksi, GenreNonFiksi, GenreMisteri, GenreRomantis,
		GenreFantasi, GenreSejarah, GenreBiografi, GenreSains,
		GenreTeknologi, GenreBisnis, GenreSelfHelp, GenreHoror,
		GenreThriller, GenreKomedi, GenreDrama, GenrePetualangan,
	}
}

// ValidStatus reports whether s is one of the enumerated statuses.
func ValidStatus(s Status) bool {
	switch s {
	case StatusBelumDibaca, StatusSedangDibaca, StatusSudahDibaca, StatusFavorit:
		return true
	}
	return false
}

// ValidGenre reports whether g is one of the enumerated genres.
func ValidGenre(g Genre) bool {
	for _, known := range Genres() {
		if g == known {
			return true
		}
	}
	return false
}
