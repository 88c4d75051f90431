package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is loaded first if present; variables
// already set in the environment keep precedence over the file.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("BUKUKU_GATEWAY_URL"); v != "" {
		cfg.GatewayBaseURL = v
	}
	if v := os.Getenv("BUKUKU_HTTP_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.HTTPTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("BUKUKU_DOWNLOAD_DIR"); v != "" {
		cfg.DownloadDir = v
	}
	if v := os.Getenv("BUKUKU_FILE_STORE"); v != "" {
		cfg.FileStore = StoreKind(v)
	}

	if v := os.Getenv("BUKUKU_S3_REGION"); v != "" {
		cfg.S3.Region = v
	}
	if v := os.Getenv("BUKUKU_S3_ACCESS_KEY"); v != "" {
		cfg.S3.AccessKey = v
	}
	if v := os.Getenv("BUKUKU_S3_SECRET_KEY"); v != "" {
		cfg.S3.SecretKey = v
	}
	if v := os.Getenv("BUKUKU_S3_ENDPOINT"); v != "" {
		cfg.S3.BaseEndpoint = v
	}
	if v := os.Getenv("BUKUKU_S3_BUCKET"); v != "" {
		cfg.S3.Bucket = v
	}
}
