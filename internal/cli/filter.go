package cli

import (
	"context"

	"bukuku/internal/book"
)

// Search sets the search text of the advanced filter, preserving the quick
// status filter. An empty argument clears the text.
func (a *App) Search(ctx context.Context, text string) error {
	f := a.ctrl.Filters()
	a.ctrl.SetAdvancedFilters(text, f.Genre)
	return a.List(ctx)
}

// FilterGenre sets the genre of the advanced filter.
func (a *App) FilterGenre(ctx context.Context, genre string) error {
	if genre != book.All && !book.ValidGenre(book.Genre(genre)) {
		printlnFn("Unknown genre:", genre)
		printlnFn("Genres:", genreList())
		return nil
	}
	f := a.ctrl.Filters()
	a.ctrl.SetAdvancedFilters(f.Search, genre)
	return a.List(ctx)
}

// FilterStatus sets the status quick filter.
func (a *App) FilterStatus(ctx context.Context, status string) error {
	if status != book.All && !book.ValidStatus(book.Status(status)) {
		printlnFn("Unknown status:", status)
		printlnFn("Statuses:", statusList())
		return nil
	}
	a.ctrl.SetQuickFilter(status)
	return a.List(ctx)
}

// ClearFilters resets search, genre and the status quick filter.
func (a *App) ClearFilters(ctx context.Context) error {
	a.ctrl.ClearFilters()
	printlnFn("Filter direset.")
	return a.List(ctx)
}

func genreList() string {
	s := ""
	for i, g := range book.Genres() {
		if i > 0 {
			s += ", "
		}
		s += string(g)
	}
	return s
}

func statusList() string {
	s := ""
	for i, st := range book.Statuses() {
		if i > 0 {
			s += ", "
		}
		s += string(st)
	}
	return s
}
