package config

import (
	"encoding/json"
	"os"
	"time"

	"bukuku/internal/flagx"
)

// jsonConfig is the DTO for the optional JSON config file. Timeout is in
// seconds; zero values leave the current Config untouched.
type jsonConfig struct {
	GatewayBaseURL string `json:"gateway_base_url"`
	HTTPTimeoutSec int    `json:"http_timeout_sec"`
	DownloadDir    string `json:"download_dir"`
	FileStore      string `json:"file_store"`

	S3Region    string `json:"s3_region"`
	S3AccessKey string `json:"s3_access_key"`
	S3SecretKey string `json:"s3_secret_key"`
	S3Endpoint  string `json:"s3_endpoint"`
	S3Bucket    string `json:"s3_bucket"`
}

// parseJSON overlays Config with values from the file named by -c/-config.
// No flag, no file, no overlay. Read or unmarshal errors panic; the caller
// runs once at startup and a broken config file should be loud.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.GatewayBaseURL != "" {
		cfg.GatewayBaseURL = jc.GatewayBaseURL
	}
	if jc.HTTPTimeoutSec > 0 {
		cfg.HTTPTimeout = time.Duration(jc.HTTPTimeoutSec) * time.Second
	}
	if jc.DownloadDir != "" {
		cfg.DownloadDir = jc.DownloadDir
	}
	if jc.FileStore != "" {
		cfg.FileStore = StoreKind(jc.FileStore)
	}
	if jc.S3Region != "" {
		cfg.S3.Region = jc.S3Region
	}
	if jc.S3AccessKey != "" {
		cfg.S3.AccessKey = jc.S3AccessKey
	}
	if jc.S3SecretKey != "" {
		cfg.S3.SecretKey = jc.S3SecretKey
	}
	if jc.S3Endpoint != "" {
		cfg.S3.BaseEndpoint = jc.S3Endpoint
	}
	if jc.S3Bucket != "" {
		cfg.S3.Bucket = jc.S3Bucket
	}
}
