package cli

import (
	"context"
	"fmt"

	"bukuku/internal/book"
)

// List prints the books that pass the current filters, in the gateway's
// updated_date-descending order.
func (a *App) List(ctx context.Context) error {
	books := a.ctrl.Visible()
	f := a.ctrl.Filters()

	if book.HasActiveFilters(f) || f.Status != book.All {
		printlnFn(fmt.Sprintf("Filter aktif: search=%q status=%s genre=%s", f.Search, f.Status, f.Genre))
	}

	if len(books) == 0 {
		printlnFn("Tidak ada buku.")
		return nil
	}

	for _, b := range books {
		printlnFn(formatLine(b))
	}
	printlnFn(fmt.Sprintf("%d buku", len(books)))
	return nil
}

func formatLine(b book.Book) string {
	meta := book.StatusMeta(b.Status)
	ebook := ""
	if b.HasEbook() {
		ebook = " [e-book]"
	}
	return fmt.Sprintf("%-10s %-30s %-20s %-12s %s%s", b.ID, clip(b.Title, 30), clip(b.Author, 20), b.Genre, meta.Label, ebook)
}

func clip(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

// Stats prints the headline counts and the per-status quick-filter badges.
func (a *App) Stats(ctx context.Context) error {
	s := a.ctrl.Stats()
	printlnFn(fmt.Sprintf("Total Buku: %d | Sudah Dibaca: %d | Sedang Dibaca: %d | Favorit: %d",
		s.Total, s.Finished, s.Reading, s.Favorites))

	counts := a.ctrl.QuickCounts()
	for _, st := range book.Statuses() {
		meta := book.StatusMeta(st)
		printlnFn(fmt.Sprintf("  %-14s %d", meta.Label, counts[string(st)]))
	}
	return nil
}

// Reload re-fetches the list from the gateway.
func (a *App) Reload(ctx context.Context) error {
	if err := a.ctrl.Reload(ctx); err != nil {
		printlnFn("Reload failed:", err.Error())
		return err
	}
	printlnFn("Reloaded.")
	return nil
}
