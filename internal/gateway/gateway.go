// Package gateway defines the contract of the remote managed backend the
// client delegates to: entity CRUD for books, the current principal, and a
// session surface. The backend is consumed, never implemented, on this side
// of the wire.
package gateway

import (
	"context"

	"bukuku/internal/book"
)

// SortUpdatedDesc is the default list ordering: most recently updated first.
const SortUpdatedDesc = "-updated_date"

// User is the signed-in principal as reported by the backend.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// Gateway is the entity CRUD surface of the remote backend. Every call is
// network-bound and fallible; implementations map transport failures to the
// sentinel errors in this package.
type Gateway interface {
	// ListBooks fetches all books visible to the current principal,
	// ordered by the given sort key (SortUpdatedDesc by default).
	ListBooks(ctx context.Context, sort string) ([]book.Book, error)

	// CreateBook persists a new record and returns it with the assigned
	// id and timestamps.
	CreateBook(ctx context.Context, b book.Book) (book.Book, error)

	// UpdateBook overwrites the record's fields server-side and returns
	// the stored result.
	UpdateBook(ctx context.Context, id string, b book.Book) (book.Book, error)

	// CurrentUser returns the signed-in principal, or ErrUnauthorized
	// when there is no session.
	CurrentUser(ctx context.Context) (User, error)
}

// Session is the authentication surface of the backend.
type Session interface {
	Login(ctx context.Context, email, password string) error
	Logout()
}
