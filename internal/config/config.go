// Package config assembles the runtime settings of the bukuku client.
// Sources are applied in order, later ones winning: built-in defaults, a
// .env file, an optional JSON file (-c/-config) and command-line flags.
package config

import (
	"time"

	"bukuku/internal/filestore"
)

// StoreKind selects where private e-book files go.
type StoreKind string

const (
	// StoreGateway uploads through the backend's file API.
	StoreGateway StoreKind = "gateway"
	// StoreS3 uploads straight to an S3-compatible bucket with presigned
	// requests.
	StoreS3 StoreKind = "s3"
)

// Config holds runtime settings for the bukuku client.
type Config struct {
	// GatewayBaseURL is the scheme and host of the backend HTTP API.
	GatewayBaseURL string
	// HTTPTimeout bounds every gateway call.
	HTTPTimeout time.Duration
	// DownloadDir is where downloaded e-books are written, relative to
	// the working directory.
	DownloadDir string
	// FileStore picks the private-file storage implementation.
	FileStore StoreKind
	// S3 is only read when FileStore is StoreS3.
	S3 filestore.S3Config
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.GatewayBaseURL = "http://127.0.0.1:8080"
	c.HTTPTimeout = 15 * time.Second
	c.DownloadDir = "ebooks"
	c.FileStore = StoreGateway
}

// Load constructs a Config, applies defaults, then overlays values from the
// environment (.env aware), a JSON file (if -c/-config names one) and
// command-line flags, in that order.
func Load() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
