package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bukuku/internal/book"
	"bukuku/internal/filex"
	"bukuku/internal/view"
)

// Show opens the detail view for one record.
func (a *App) Show(ctx context.Context, id string) error {
	b, err := a.ctrl.Select(id)
	if err != nil {
		printlnFn("Unknown book:", id)
		return err
	}

	meta := book.StatusMeta(b.Status)

	printlnFn(strings.Repeat("-", 40))
	printlnFn(b.Title)
	printlnFn("oleh", b.Author)
	printlnFn(fmt.Sprintf("Status: %s | Genre: %s", meta.Label, b.Genre))
	if b.Year != 0 {
		printlnFn("Tahun:", b.Year)
	}
	if b.Pages != 0 {
		printlnFn("Halaman:", b.Pages)
	}
	if b.Rating >= 1 && b.Rating <= 5 {
		printlnFn("Rating:", strings.Repeat("★", b.Rating)+strings.Repeat("☆", 5-b.Rating))
	}
	if b.Publisher != "" {
		printlnFn("Penerbit:", b.Publisher)
	}
	if b.ISBN != "" {
		printlnFn("ISBN:", b.ISBN)
	}
	if b.Description != "" {
		printlnFn("\nDeskripsi:\n" + b.Description)
	}
	if b.Notes != "" {
		printlnFn("\nCatatan:\n" + b.Notes)
	}
	if b.HasEbook() {
		printlnFn("\nE-book tersedia, 'download", b.ID+"' untuk mengunduh")
	}
	printlnFn(strings.Repeat("-", 40))

	a.ctrl.Deselect()
	return nil
}

// SetStatus is the quick status-change action: a full-record update with
// only the status swapped, then a reload.
func (a *App) SetStatus(ctx context.Context, id, status string) error {
	if !book.ValidStatus(book.Status(status)) {
		printlnFn("Unknown status:", status)
		printlnFn("Statuses:", statusList())
		return nil
	}

	if err := a.ctrl.ChangeStatus(ctx, id, book.Status(status)); err != nil {
		if errors.Is(err, view.ErrUnknownBook) {
			printlnFn("Unknown book:", id)
		} else {
			printlnFn("Gagal mengubah status:", err.Error())
		}
		return err
	}

	printlnFn("Status diubah ke", book.StatusMeta(book.Status(status)).Label)
	return nil
}

// Download fetches the book's e-book through a signed URL into the
// configured download directory.
func (a *App) Download(ctx context.Context, id string) error {
	dir, err := filex.EnsureSubDir(a.config.DownloadDir)
	if err != nil {
		printlnFn("Gagal menyiapkan folder unduhan:", err.Error())
		return err
	}

	path, err := a.ctrl.DownloadEbook(ctx, id, dir)
	if err != nil {
		switch {
		case errors.Is(err, view.ErrUnknownBook):
			printlnFn("Unknown book:", id)
		case errors.Is(err, view.ErrNoEbook):
			printlnFn("Buku ini tidak punya e-book.")
		default:
			printlnFn("Gagal mengunduh e-book. Silakan coba lagi.")
		}
		return err
	}

	printlnFn("E-book tersimpan di", path)
	return nil
}
