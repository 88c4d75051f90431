package cli

import (
	"context"
	"errors"
	"os"

	"bukuku/internal/book"
	"bukuku/internal/form"
)

// Add walks the user through a create-mode draft and submits it.
func (a *App) Add(ctx context.Context) error {
	draft := a.ctrl.StartCreate()
	return a.fillAndSubmit(ctx, draft)
}

// Edit seeds a draft from an existing record; pressing Enter on a field
// keeps its current value.
func (a *App) Edit(ctx context.Context, id string) error {
	draft, err := a.ctrl.StartEdit(id)
	if err != nil {
		printlnFn("Unknown book:", id)
		return err
	}
	return a.fillAndSubmit(ctx, draft)
}

func (a *App) fillAndSubmit(ctx context.Context, d form.Draft) error {
	out := os.Stdout
	var err error

	if d.Title, err = GetDefaultedText(a.reader, "Judul Buku *", d.Title, out); err != nil {
		return err
	}
	if d.Author, err = GetDefaultedText(a.reader, "Penulis *", d.Author, out); err != nil {
		return err
	}

	genre, err := GetDefaultedText(a.reader, "Genre ("+genreList()+")", string(d.Genre), out)
	if err != nil {
		return err
	}
	d.Genre = book.Genre(genre)

	status, err := GetDefaultedText(a.reader, "Status ("+statusList()+")", string(d.Status), out)
	if err != nil {
		return err
	}
	d.Status = book.Status(status)

	if d.Year, err = GetDefaultedText(a.reader, "Tahun Terbit", d.Year, out); err != nil {
		return err
	}
	if d.Pages, err = GetDefaultedText(a.reader, "Jumlah Halaman", d.Pages, out); err != nil {
		return err
	}
	if d.Rating, err = GetDefaultedText(a.reader, "Rating (1-5)", d.Rating, out); err != nil {
		return err
	}
	if d.Publisher, err = GetDefaultedText(a.reader, "Penerbit", d.Publisher, out); err != nil {
		return err
	}
	if d.ISBN, err = GetDefaultedText(a.reader, "ISBN", d.ISBN, out); err != nil {
		return err
	}
	if d.CoverURL, err = GetDefaultedText(a.reader, "URL Cover", d.CoverURL, out); err != nil {
		return err
	}
	if d.Description, err = GetMultiline(a.reader, "Deskripsi", out); err != nil {
		return err
	}
	if d.Notes, err = GetMultiline(a.reader, "Catatan Pribadi", out); err != nil {
		return err
	}

	path, err := GetDefaultedText(a.reader, "File E-book (path lokal, kosongkan jika tidak ada)", "", out)
	if err != nil {
		return err
	}
	if path != "" {
		d.EbookPath = path
		a.ctrl.Adapter().ResetUpload()
	}

	return a.submitDraft(ctx, d)
}

// submitDraft saves the draft and reports the outcome. A failed submit
// leaves the form state open; the user can run add/edit again or fix the
// input (validation and upload failures never persist partial data).
func (a *App) submitDraft(ctx context.Context, d form.Draft) error {
	if d.EbookPath != "" {
		printlnFn("Mengupload e-book...")
	}

	saved, err := a.ctrl.Submit(ctx, d)
	if err != nil {
		switch {
		case errors.Is(err, form.ErrValidation):
			printlnFn("Data tidak valid:", err.Error())
		case errors.Is(err, form.ErrUploadFailed):
			printlnFn("Upload e-book gagal, buku tidak disimpan. Coba lagi.")
		default:
			printlnFn("Gagal menyimpan buku:", err.Error())
		}
		return err
	}

	if d.IsEdit() {
		printlnFn("Buku diperbarui:", saved.ID)
	} else {
		printlnFn("Buku ditambahkan:", saved.ID)
	}
	return nil
}
