// Package filestore abstracts private file storage: uploading an e-book and
// exchanging its opaque storage reference for a time-limited download URL.
// Two implementations exist: the backend's file API (see gateway/rest) and a
// direct S3-compatible bucket using presigned requests.
package filestore

import (
	"context"
	"time"
)

// SignedURL is a pre-authorized, expiring download link for a stored file.
type SignedURL struct {
	URL       string    `json:"signed_url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store uploads private files and signs download URLs. The string returned
// by UploadPrivate is an opaque storage reference, not a fetchable URL; it
// must be exchanged through SignedDownloadURL before use.
type Store interface {
	UploadPrivate(ctx context.Context, data []byte, filename string) (string, error)
	SignedDownloadURL(ctx context.Context, ref string) (SignedURL, error)
}
