package book

import "strings"

// All is the sentinel filter value meaning "no constraint on this field"
// ("semua" is Indonesian for "all").
const All = "semua"

// Filters is the merged quick + advanced filter state. The quick filter
// writes only Status; the advanced panel writes Search and Genre.
type Filters struct {
	Search string
	Status string
	Genre  string
}

// NoFilters returns the neutral filter state that matches every book.
func NoFilters() Filters {
	return Filters{Search: "", Status: All, Genre: All}
}

func (f Filters) matches(b Book) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		title := strings.ToLower(b.Title)
		author := strings.ToLower(b.Author)
		if !strings.Contains(title, needle) && !strings.Contains(author, needle) {
			return false
		}
	}
	if f.Status != All && string(b.Status) != f.Status {
		return false
	}
	if f.Genre != All && string(b.Genre) != f.Genre {
		return false
	}
	return true
}

// Filter returns the books that pass all three predicates (search, status,
// genre), in their original order. The result is always a fresh slice; the
// input is never mutated.
func Filter(books []Book, f Filters) []Book {
	out := make([]Book, 0, len(books))
	for _, b := range books {
		if f.matches(b) {
			out = append(out, b)
		}
	}
	return out
}

// HasActiveFilters reports whether the advanced panel holds a constraint.
// Only Search and Genre count; the status quick filter is deliberately
// excluded so the quick-filter bar and the "reset" affordance of the
// advanced panel stay independent.
func HasActiveFilters(f Filters) bool {
	return f.Search != "" || f.Genre != All
}

// CollectionStats are the headline counts shown above the book list.
type CollectionStats struct {
	Total     int
	Finished  int
	Reading   int
	Favorites int
}

// Stats computes the headline counts in a single pass.
func Stats(books []Book) CollectionStats {
	s := CollectionStats{Total: len(books)}
	for _, b := range books {
		switch b.Status {
		case StatusSudahDibaca:
			s.Finished++
		case StatusSedangDibaca:
			s.Reading++
		case StatusFavorit:
			s.Favorites++
		}
	}
	return s
}

// CountByStatus returns the number of books with the given status; the All
// sentinel counts the whole list. Used for the quick-filter badges.
func CountByStatus(books []Book, status string) int {
	if status == All {
		return len(books)
	}
	n := 0
	for _, b := range books {
		if string(b.Status) == status {
			n++
		}
	}
	return n
}
