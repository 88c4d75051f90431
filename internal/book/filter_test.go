package book

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBooks() []Book {
	return []Book{
		{ID: "1", Title: "Dune", Author: "Frank Herbert", Genre: GenreFiksi, Status: StatusSudahDibaca},
		{ID: "2", Title: "Dune Messiah", Author: "Frank Herbert", Genre: GenreFiksi, Status: StatusBelumDibaca},
		{ID: "3", Title: "Laskar Pelangi", Author: "Andrea Hirata", Genre: GenreDrama, Status: StatusFavorit},
		{ID: "4", Title: "Clean Code", Author: "Robert Martin", Genre: GenreTeknologi, Status: StatusSedangDibaca},
		{ID: "5", Title: "Bumi Manusia", Author: "Pramoedya Ananta Toer", Genre: GenreSejarah, Status: StatusSudahDibaca},
	}
}

func TestFilter_NeutralFiltersReturnEverything(t *testing.T) {
	books := sampleBooks()
	got := Filter(books, NoFilters())

	require.Equal(t, books, got)
}

func TestFilter_SearchMatchesTitleOrAuthor_CaseInsensitive(t *testing.T) {
	books := sampleBooks()

	tests := []struct {
		name    string
		search  string
		wantIDs []string
	}{
		{"title substring", "dune", []string{"1", "2"}},
		{"author substring", "herbert", []string{"1", "2"}},
		{"mixed case", "DuNe MesS", []string{"2"}},
		{"no match", "tolkien", []string{}},
		{"empty matches all", "", []string{"1", "2", "3", "4", "5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NoFilters()
			f.Search = tt.search
			got := Filter(books, f)

			ids := make([]string, 0, len(got))
			for _, b := range got {
				ids = append(ids, b.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilter_AllPredicatesAreANDed(t *testing.T) {
	books := sampleBooks()

	// One finished and one unread book both match "dune"; the status
	// quick filter must narrow it to the finished one.
	f := Filters{Search: "dune", Status: string(StatusSudahDibaca), Genre: All}
	got := Filter(books, f)

	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestFilter_GenreSentinel(t *testing.T) {
	books := sampleBooks()

	f := Filters{Search: "", Status: All, Genre: string(GenreFiksi)}
	got := Filter(books, f)
	require.Len(t, got, 2)

	f.Genre = All
	assert.Len(t, Filter(books, f), len(books))
}

func TestFilter_PreservesOrderAndInput(t *testing.T) {
	books := sampleBooks()
	f := Filters{Search: "", Status: string(StatusSudahDibaca), Genre: All}

	got := Filter(books, f)

	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "5", got[1].ID)
	// input untouched
	assert.Len(t, books, 5)
}

// Randomized check against a brute-force reference predicate.
func TestFilter_AgainstReferencePredicate(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	titles := []string{"Dune", "dune ii", "Bumi", "Code", "Laut Bercerita", ""}
	authors := []string{"Herbert", "Hirata", "Martin", "Leila", ""}
	searches := []string{"", "dune", "HER", "z", "bumi"}
	genres := Genres()
	statuses := Statuses()

	for i := 0; i < 200; i++ {
		n := rng.Intn(8)
		books := make([]Book, 0, n)
		for j := 0; j < n; j++ {
			books = append(books, Book{
				ID:     string(rune('a' + j)),
				Title:  titles[rng.Intn(len(titles))],
				Author: authors[rng.Intn(len(authors))],
				Genre:  genres[rng.Intn(len(genres))],
				Status: statuses[rng.Intn(len(statuses))],
			})
		}

		f := Filters{
			Search: searches[rng.Intn(len(searches))],
			Status: All,
			Genre:  All,
		}
		if rng.Intn(2) == 0 {
			f.Status = string(statuses[rng.Intn(len(statuses))])
		}
		if rng.Intn(2) == 0 {
			f.Genre = string(genres[rng.Intn(len(genres))])
		}

		got := Filter(books, f)

		want := make([]Book, 0, n)
		for _, b := range books {
			if f.matches(b) {
				want = append(want, b)
			}
		}
		require.Equal(t, want, got, "seed case %d, filters %+v", i, f)

		// result must be a subset of the input, in input order
		idx := 0
		for _, g := range got {
			found := false
			for ; idx < len(books); idx++ {
				if books[idx] == g {
					found = true
					idx++
					break
				}
			}
			require.True(t, found, "result not an ordered subset")
		}
	}
}

func TestHasActiveFilters_IgnoresStatus(t *testing.T) {
	f := NoFilters()
	assert.False(t, HasActiveFilters(f))

	f.Status = string(StatusFavorit)
	assert.False(t, HasActiveFilters(f), "status quick filter is not an advanced filter")

	f.Search = "dune"
	assert.True(t, HasActiveFilters(f))

	f = NoFilters()
	f.Genre = string(GenreHoror)
	assert.True(t, HasActiveFilters(f))
}

func TestStats(t *testing.T) {
	books := sampleBooks()
	s := Stats(books)

	assert.Equal(t, len(books), s.Total)
	assert.Equal(t, 2, s.Finished)
	assert.Equal(t, 1, s.Reading)
	assert.Equal(t, 1, s.Favorites)
	assert.LessOrEqual(t, s.Finished+s.Reading+s.Favorites, s.Total)

	// each count equals the filter-by-that-status length
	f := NoFilters()
	f.Status = string(StatusSudahDibaca)
	assert.Len(t, Filter(books, f), s.Finished)
}

func TestStats_Empty(t *testing.T) {
	s := Stats(nil)
	assert.Equal(t, CollectionStats{}, s)
}

func TestCountByStatus(t *testing.T) {
	books := sampleBooks()

	assert.Equal(t, len(books), CountByStatus(books, All))
	assert.Equal(t, 2, CountByStatus(books, string(StatusSudahDibaca)))
	assert.Equal(t, 1, CountByStatus(books, string(StatusBelumDibaca)))
	assert.Equal(t, 0, CountByStatus(nil, string(StatusFavorit)))
}
