// Package rest implements the gateway contract against the backend's
// HTTP/JSON API. It also implements the file-store contract through the
// backend's private-file endpoints.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"
	"time"

	"bukuku/internal/book"
	"bukuku/internal/filestore"
	"bukuku/internal/gateway"
	"bukuku/internal/logging"

	"github.com/golang-jwt/jwt/v5"
)

// refreshLeeway is how close to expiry an access token may get before the
// client refreshes it ahead of a call instead of waiting for a 401.
const refreshLeeway = 30 * time.Second

// timeNow is a test seam.
var timeNow = time.Now

// Client talks to the backend over HTTP/JSON. It holds the token pair for
// the current session and transparently refreshes the access token, either
// proactively when it is about to expire or once after an unauthorized
// response.
type Client struct {
	baseURL string
	http    *http.Client
	log     logging.Logger

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

// NewClient returns a client for the backend at baseURL (scheme and host,
// no trailing slash required).
func NewClient(baseURL string, timeout time.Duration, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log.With("component", "gateway"),
	}
}

type tokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Login exchanges credentials for a token pair.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var pair tokenPair
	body := map[string]string{"email": email, "password": password}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", body, &pair, false); err != nil {
		return err
	}

	c.mu.Lock()
	c.accessToken = pair.AccessToken
	c.refreshToken = pair.RefreshToken
	c.mu.Unlock()
	return nil
}

// Logout drops the session tokens. The backend keeps no client-visible
// session state beyond them.
func (c *Client) Logout() {
	c.mu.Lock()
	c.accessToken = ""
	c.refreshToken = ""
	c.mu.Unlock()
}

// CurrentUser returns the signed-in principal.
func (c *Client) CurrentUser(ctx context.Context) (gateway.User, error) {
	var u gateway.User
	if err := c.doJSON(ctx, http.MethodGet, "/auth/me", nil, &u, true); err != nil {
		return gateway.User{}, err
	}
	return u, nil
}

// ListBooks fetches all books for the current principal ordered by the
// given sort key.
func (c *Client) ListBooks(ctx context.Context, sort string) ([]book.Book, error) {
	if sort == "" {
		sort = gateway.SortUpdatedDesc
	}
	var books []book.Book
	path := "/entities/books?sort=" + sort
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &books, true); err != nil {
		return nil, err
	}
	return books, nil
}

// CreateBook persists a new record.
func (c *Client) CreateBook(ctx context.Context, b book.Book) (book.Book, error) {
	var created book.Book
	if err := c.doJSON(ctx, http.MethodPost, "/entities/books", b, &created, true); err != nil {
		return book.Book{}, err
	}
	return created, nil
}

// UpdateBook overwrites the record's fields server-side.
func (c *Client) UpdateBook(ctx context.Context, id string, b book.Book) (book.Book, error) {
	var updated book.Book
	if err := c.doJSON(ctx, http.MethodPatch, "/entities/books/"+id, b, &updated, true); err != nil {
		return book.Book{}, err
	}
	return updated, nil
}

// UploadPrivate sends the file to the backend's private storage and returns
// the opaque storage reference.
func (c *Client) UploadPrivate(ctx context.Context, data []byte, filename string) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(data); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	var out struct {
		FileURI string `json:"file_uri"`
	}
	err = c.doRequest(ctx, http.MethodPost, "/files/private", buf.Bytes(), mw.FormDataContentType(), &out, true)
	if err != nil {
		return "", err
	}
	return out.FileURI, nil
}

// SignedDownloadURL exchanges a storage reference for a time-limited URL.
func (c *Client) SignedDownloadURL(ctx context.Context, ref string) (filestore.SignedURL, error) {
	var out filestore.SignedURL
	body := map[string]string{"file_uri": ref}
	if err := c.doJSON(ctx, http.MethodPost, "/files/signed-url", body, &out, true); err != nil {
		return filestore.SignedURL{}, err
	}
	return out, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any, authed bool) error {
	var payload []byte
	contentType := ""
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		payload = b
		contentType = "application/json"
	}
	return c.doRequest(ctx, method, path, payload, contentType, out, authed)
}

// doRequest performs one call with auth handling. On a 401 it refreshes the
// token pair once and replays the request; every other failure maps straight
// to a sentinel error.
func (c *Client) doRequest(ctx context.Context, method, path string, payload []byte, contentType string, out any, authed bool) error {
	if authed {
		c.refreshIfExpiring(ctx)
	}

	resp, err := c.send(ctx, method, path, payload, contentType, authed)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized && authed && c.currentRefreshToken() != "" {
		resp.Body.Close()
		c.log.Debug(ctx, "unauthorized response, refreshing and replaying", "path", path)
		if err := c.refresh(ctx); err != nil {
			return err
		}
		resp, err = c.send(ctx, method, path, payload, contentType, authed)
		if err != nil {
			return err
		}
	}
	defer resp.Body.Close()

	if err := mapStatus(resp); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, payload []byte, contentType string, authed bool) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if authed {
		if token := c.currentAccessToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", gateway.ErrUnavailable, err)
	}
	return resp, nil
}

func (c *Client) currentAccessToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accessToken
}

func (c *Client) currentRefreshToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refreshToken
}

// refreshIfExpiring inspects the access token's exp claim and refreshes the
// pair when it is within refreshLeeway of expiry. The claim is read without
// signature verification; only the server can verify it, the client just
// needs the timestamp.
func (c *Client) refreshIfExpiring(ctx context.Context) {
	token := c.currentAccessToken()
	if token == "" || c.currentRefreshToken() == "" {
		return
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return
	}
	if claims.ExpiresAt == nil {
		return
	}
	if timeNow().Add(refreshLeeway).Before(claims.ExpiresAt.Time) {
		return
	}

	c.log.Debug(ctx, "access token near expiry, refreshing")

	// Failure here is not fatal: the call proceeds with the stale token
	// and the 401 path takes over.
	_ = c.refresh(ctx)
}

func (c *Client) refresh(ctx context.Context) error {
	body := map[string]string{"refresh_token": c.currentRefreshToken()}
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	resp, err := c.send(ctx, http.MethodPost, "/auth/refresh", b, "application/json", false)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := mapStatus(resp); err != nil {
		return err
	}

	var pair tokenPair
	if err := json.NewDecoder(resp.Body).Decode(&pair); err != nil {
		return fmt.Errorf("decoding token pair: %w", err)
	}

	c.mu.Lock()
	c.accessToken = pair.AccessToken
	c.refreshToken = pair.RefreshToken
	c.mu.Unlock()
	return nil
}

func mapStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return gateway.ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return gateway.ErrNotFound
	case resp.StatusCode >= 500:
		return gateway.ErrUnavailable
	default:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("gateway: %s: %s", resp.Status, strings.TrimSpace(string(msg)))
	}
}
