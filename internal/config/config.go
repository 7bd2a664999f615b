package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables; a .env file can be
// auto-loaded by importing _ "github.com/joho/godotenv/autoload".
type AppConfig struct {
	// Addr is the listen address (host:port or :port).
	Addr string
	// DataDir is the directory holding the stored documents.
	DataDir string
	// CredentialsFile is the flat file of username:hash entries.
	CredentialsFile string
	// UploadMaxBytes rejects uploads of this size or larger.
	UploadMaxBytes int64
	// ListingCache toggles the invalidate-on-write directory listing cache.
	ListingCache bool
}

// Load reads configuration from environment variables. Real environment
// variables take precedence over any .env file.
func Load() *AppConfig {
	dataDir := getEnv("CMS_DATA_DIR", "./data")
	return &AppConfig{
		Addr:            getEnv("CMS_ADDR", ":8080"),
		DataDir:         dataDir,
		CredentialsFile: getEnv("CMS_CREDENTIALS_FILE", filepath.Join(filepath.Dir(dataDir), "users.conf")),
		UploadMaxBytes:  getEnvInt64("CMS_UPLOAD_MAX_BYTES", 1_500_000),
		ListingCache:    getEnvBool("CMS_LISTING_CACHE", true),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.ParseInt(v, 10, 64)
		if err == nil {
			return i
		}
	}
	return def
}
