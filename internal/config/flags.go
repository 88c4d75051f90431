package config

import (
	"flag"
	"os"
	"time"

	"bukuku/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the backend gateway
//	-t int      HTTP timeout in seconds
//	-d string   download directory for e-books
//	-s string   file store: "gateway" or "s3"
//
// Only the flags listed here are parsed; os.Args is filtered first with
// flagx.FilterArgs so other packages' flags do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-d", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.GatewayBaseURL, "a", cfg.GatewayBaseURL, "base URL of the backend gateway")
	timeoutSec := fs.Int("t", int(cfg.HTTPTimeout.Seconds()), "HTTP timeout (in seconds)")
	fs.StringVar(&cfg.DownloadDir, "d", cfg.DownloadDir, "download directory for e-books")
	store := fs.String("s", string(cfg.FileStore), "file store: gateway or s3")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.HTTPTimeout = time.Duration(*timeoutSec) * time.Second
	cfg.FileStore = StoreKind(*store)
}
