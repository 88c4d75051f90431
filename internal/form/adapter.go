package form

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"bukuku/internal/book"
	"bukuku/internal/filestore"
	"bukuku/internal/gateway"
)

// UploadState tracks the optional e-book upload inside a submit.
type UploadState string

const (
	UploadIdle      UploadState = "idle"
	UploadUploading UploadState = "uploading"
	UploadSuccess   UploadState = "success"
	UploadError     UploadState = "error"
)

// ErrSubmitInFlight is returned when a submit is issued while another one
// has not finished. The UI disables the submit control; this is the
// backstop.
var ErrSubmitInFlight = errors.New("submit already in progress")

// readFile is a test seam for reading the attached e-book from disk.
var readFile = os.ReadFile

// Adapter saves a finalized draft through the gateway, uploading a locally
// attached e-book first. An upload failure aborts the save entirely; no
// partial record is persisted.
type Adapter struct {
	gw    gateway.Gateway
	store filestore.Store

	mu       sync.Mutex
	inFlight bool
	upload   UploadState
}

func NewAdapter(gw gateway.Gateway, store filestore.Store) *Adapter {
	return &Adapter{gw: gw, store: store, upload: UploadIdle}
}

// UploadState returns the state of the most recent e-book upload attempt.
func (a *Adapter) UploadState() UploadState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.upload
}

// ResetUpload returns the upload state to idle. Called when the user picks
// a new file after a failed attempt.
func (a *Adapter) ResetUpload() {
	a.setUpload(UploadIdle)
}

func (a *Adapter) setUpload(s UploadState) {
	a.mu.Lock()
	a.upload = s
	a.mu.Unlock()
}

func (a *Adapter) begin() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.inFlight {
		return ErrSubmitInFlight
	}
	a.inFlight = true
	return nil
}

func (a *Adapter) end() {
	a.mu.Lock()
	a.inFlight = false
	a.mu.Unlock()
}

// Submit finalizes the draft and persists it: create when the draft has no
// id, full-record update otherwise. If a local e-book file is attached it is
// uploaded first and the returned storage reference replaces EbookURI; if
// that upload fails the save is aborted and the caller keeps the form open
// for retry.
func (a *Adapter) Submit(ctx context.Context, d Draft) (book.Book, error) {
	if err := a.begin(); err != nil {
		return book.Book{}, err
	}
	defer a.end()

	payload, err := d.Finalize()
	if err != nil {
		return book.Book{}, err
	}

	if d.EbookPath != "" {
		ref, err := a.uploadEbook(ctx, d.EbookPath)
		if err != nil {
			return book.Book{}, err
		}
		payload.EbookURI = ref
	}

	if d.IsEdit() {
		saved, err := a.gw.UpdateBook(ctx, d.ID, payload)
		if err != nil {
			return book.Book{}, fmt.Errorf("updating book: %w", err)
		}
		return saved, nil
	}

	saved, err := a.gw.CreateBook(ctx, payload)
	if err != nil {
		return book.Book{}, fmt.Errorf("creating book: %w", err)
	}
	return saved, nil
}

func (a *Adapter) uploadEbook(ctx context.Context, path string) (string, error) {
	a.setUpload(UploadUploading)

	data, err := readFile(path)
	if err != nil {
		a.setUpload(UploadError)
		return "", fmt.Errorf("%w: reading %s: %v", ErrUploadFailed, path, err)
	}

	ref, err := a.store.UploadPrivate(ctx, data, filepath.Base(path))
	if err != nil {
		a.setUpload(UploadError)
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	a.setUpload(UploadSuccess)
	return ref, nil
}
