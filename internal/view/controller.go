// Package view owns the client-side state of the collection screen: the
// fetched book list, the merged filter object, the current selection and the
// form toggles. All mutation goes through the Controller; gateway failures
// are logged and degrade the state, they never propagate as panics.
package view

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"bukuku/internal/book"
	"bukuku/internal/filestore"
	"bukuku/internal/form"
	"bukuku/internal/gateway"
	"bukuku/internal/logging"
)

// ErrNoEbook is returned when a download is requested for a record without
// an attached e-book.
var ErrNoEbook = errors.New("book has no e-book attached")

// ErrUnknownBook is returned when an operation names an id that is not in
// the current list.
var ErrUnknownBook = errors.New("unknown book id")

// httpGet is a test seam for fetching the signed download URL.
var httpGet = http.Get

// Controller is the single owner of the in-memory view state. The mutex
// only matters during the initial dual fetch; everything else runs on one
// logical thread.
type Controller struct {
	gw      gateway.Gateway
	store   filestore.Store
	adapter *form.Adapter
	log     logging.Logger

	mu       sync.Mutex
	loading  bool
	books    []book.Book
	filters  book.Filters
	user     *gateway.User
	selected *book.Book
	showForm bool
	editing  *book.Book
}

func NewController(gw gateway.Gateway, store filestore.Store, log logging.Logger) *Controller {
	return &Controller{
		gw:      gw,
		store:   store,
		adapter: form.NewAdapter(gw, store),
		log:     log.With("component", "view"),
		filters: book.NoFilters(),
	}
}

// Load performs the initial dual fetch: current user and book list,
// concurrently. A missing session is tolerated (the list simply comes back
// empty under access control); either failure is logged and the view still
// reaches the ready state.
func (c *Controller) Load(ctx context.Context) {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		u, err := c.gw.CurrentUser(ctx)
		if err != nil {
			if errors.Is(err, gateway.ErrUnauthorized) {
				c.log.Info(ctx, "no signed-in user, continuing anonymously")
			} else {
				c.log.Error(ctx, "fetching current user", "err", err)
			}
			return
		}
		c.mu.Lock()
		c.user = &u
		c.mu.Unlock()
	}()

	go func() {
		defer wg.Done()
		books, err := c.gw.ListBooks(ctx, gateway.SortUpdatedDesc)
		if err != nil {
			c.log.Error(ctx, "loading books", "err", err)
			return
		}
		c.mu.Lock()
		c.books = books
		c.mu.Unlock()
	}()

	wg.Wait()

	c.mu.Lock()
	c.loading = false
	c.mu.Unlock()
}

// Reload re-fetches the book list only, keeping the default ordering by
// updated_date descending. Called after every write so the displayed order
// stays correct.
func (c *Controller) Reload(ctx context.Context) error {
	books, err := c.gw.ListBooks(ctx, gateway.SortUpdatedDesc)
	if err != nil {
		c.log.Error(ctx, "reloading books", "err", err)
		return err
	}
	c.mu.Lock()
	c.books = books
	c.mu.Unlock()
	return nil
}

// Loading reports whether the initial fetch is still in flight.
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Books returns a copy of the unfiltered list.
func (c *Controller) Books() []book.Book {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]book.Book, len(c.books))
	copy(out, c.books)
	return out
}

// Visible applies the current filters to the list.
func (c *Controller) Visible() []book.Book {
	c.mu.Lock()
	books := c.books
	f := c.filters
	c.mu.Unlock()
	return book.Filter(books, f)
}

// Stats returns the headline counts over the unfiltered list.
func (c *Controller) Stats() book.CollectionStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return book.Stats(c.books)
}

// QuickCounts returns the badge count for every quick-filter key, the All
// sentinel included.
func (c *Controller) QuickCounts() map[string]int {
	c.mu.Lock()
	books := c.books
	c.mu.Unlock()

	counts := map[string]int{book.All: len(books)}
	for _, s := range book.Statuses() {
		counts[string(s)] = book.CountByStatus(books, string(s))
	}
	return counts
}

// Filters returns the current merged filter state.
func (c *Controller) Filters() book.Filters {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filters
}

// SetQuickFilter writes only the status key of the merged filter object.
func (c *Controller) SetQuickFilter(status string) {
	c.mu.Lock()
	c.filters.Status = status
	c.mu.Unlock()
}

// SetAdvancedFilters writes search and genre, preserving whatever quick
// filter is active.
func (c *Controller) SetAdvancedFilters(search, genre string) {
	c.mu.Lock()
	c.filters.Search = search
	c.filters.Genre = genre
	c.mu.Unlock()
}

// ClearFilters resets the whole filter object, the status quick filter
// included. One policy for every call site.
func (c *Controller) ClearFilters() {
	c.mu.Lock()
	c.filters = book.NoFilters()
	c.mu.Unlock()
}

// ChangeStatus issues a full-record update with only the status swapped,
// then reloads the list.
func (c *Controller) ChangeStatus(ctx context.Context, id string, status book.Status) error {
	b, ok := c.find(id)
	if !ok {
		return ErrUnknownBook
	}

	b.Status = status
	if _, err := c.gw.UpdateBook(ctx, id, b); err != nil {
		c.log.Error(ctx, "updating book status", "id", id, "err", err)
		return err
	}
	return c.Reload(ctx)
}

func (c *Controller) find(id string) (book.Book, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, b := range c.books {
		if b.ID == id {
			return b, true
		}
	}
	return book.Book{}, false
}

// Select opens the detail view for the given id.
func (c *Controller) Select(id string) (book.Book, error) {
	b, ok := c.find(id)
	if !ok {
		return book.Book{}, ErrUnknownBook
	}
	c.mu.Lock()
	c.selected = &b
	c.mu.Unlock()
	return b, nil
}

// Selected returns the book in the detail view, if any.
func (c *Controller) Selected() (book.Book, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == nil {
		return book.Book{}, false
	}
	return *c.selected, true
}

// Deselect closes the detail view.
func (c *Controller) Deselect() {
	c.mu.Lock()
	c.selected = nil
	c.mu.Unlock()
}

// StartCreate opens the form with create-mode defaults.
func (c *Controller) StartCreate() form.Draft {
	c.mu.Lock()
	c.showForm = true
	c.editing = nil
	c.mu.Unlock()
	return form.NewDraft()
}

// StartEdit opens the form seeded from an existing record and closes the
// detail view.
func (c *Controller) StartEdit(id string) (form.Draft, error) {
	b, ok := c.find(id)
	if !ok {
		return form.Draft{}, ErrUnknownBook
	}
	c.mu.Lock()
	c.showForm = true
	c.editing = &b
	c.selected = nil
	c.mu.Unlock()
	return form.DraftFrom(b), nil
}

// ShowingForm reports whether the create/edit form is open.
func (c *Controller) ShowingForm() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.showForm
}

// CloseForm closes the form without saving.
func (c *Controller) CloseForm() {
	c.mu.Lock()
	c.showForm = false
	c.editing = nil
	c.mu.Unlock()
}

// Adapter exposes the form adapter, mainly for its upload state.
func (c *Controller) Adapter() *form.Adapter {
	return c.adapter
}

// Submit saves the draft through the form adapter. On success the form
// closes and the list reloads; on failure the form stays open so the user
// can retry.
func (c *Controller) Submit(ctx context.Context, d form.Draft) (book.Book, error) {
	saved, err := c.adapter.Submit(ctx, d)
	if err != nil {
		c.log.Error(ctx, "saving book", "err", err)
		return book.Book{}, err
	}

	c.CloseForm()
	if err := c.Reload(ctx); err != nil {
		// The save went through; a failed reload only staled the list.
		c.log.Warn(ctx, "reload after save failed", "err", err)
	}
	return saved, nil
}

// DownloadEbook exchanges the book's storage reference for a signed URL,
// fetches it and writes the file into dir. The filename is derived from the
// title (spaces to underscores) and the reference's extension.
func (c *Controller) DownloadEbook(ctx context.Context, id, dir string) (string, error) {
	b, ok := c.find(id)
	if !ok {
		return "", ErrUnknownBook
	}
	if !b.HasEbook() {
		return "", ErrNoEbook
	}

	signed, err := c.store.SignedDownloadURL(ctx, b.EbookURI)
	if err != nil {
		c.log.Error(ctx, "signing download url", "id", id, "err", err)
		return "", err
	}

	resp, err := httpGet(signed.URL)
	if err != nil {
		return "", fmt.Errorf("fetching e-book: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching e-book: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading e-book: %w", err)
	}

	name := strings.ReplaceAll(b.Title, " ", "_") + path.Ext(b.EbookURI)
	target := filepath.Join(dir, name)
	if err := os.WriteFile(target, data, 0o600); err != nil {
		return "", fmt.Errorf("writing %s: %w", target, err)
	}

	c.log.Info(ctx, "e-book downloaded", "id", id, "path", target)
	return target, nil
}

// User returns the signed-in principal, if the initial fetch found one.
func (c *Controller) User() (gateway.User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		return gateway.User{}, false
	}
	return *c.user, true
}

// UserFromGateway fetches the principal from the gateway and records it.
// Used after an explicit login.
func (c *Controller) UserFromGateway(ctx context.Context) (gateway.User, error) {
	u, err := c.gw.CurrentUser(ctx)
	if err != nil {
		return gateway.User{}, err
	}
	c.SetUser(u)
	return u, nil
}

// SetUser records the principal after an explicit login.
func (c *Controller) SetUser(u gateway.User) {
	c.mu.Lock()
	c.user = &u
	c.mu.Unlock()
}

// ClearUser drops the principal after logout.
func (c *Controller) ClearUser() {
	c.mu.Lock()
	c.user = nil
	c.mu.Unlock()
}

// Greeting returns the user's first name, or "Pribadi" when nobody is
// signed in.
func (c *Controller) Greeting() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user != nil {
		if fields := strings.Fields(c.user.FullName); len(fields) > 0 {
			return fields[0]
		}
	}
	return "Pribadi"
}
