package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the whole application configuration.
// Populated once from environment variables at startup and passed around
// as-is; nothing mutates it after Load returns.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Storage  StorageConfig
	MinIO    MinIOConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string

	// PublicBaseURL is the externally reachable address of this service,
	// used to build fullImageUrl values in item listings.
	PublicBaseURL string

	// OpTimeout bounds every database/blob round-trip inside the services.
	OpTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MinConns int
}

type StorageConfig struct {
	Driver    string // local, minio
	UploadDir string // filesystem directory for the local driver
	URLPrefix string // public prefix blobs are served under, e.g. /uploads
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	opTimeout, err := time.ParseDuration(getEnv("APP_OP_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_OP_TIMEOUT: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:          getEnv("APP_NAME", "LostFound API"),
			Environment:   getEnv("APP_ENV", "development"),
			Port:          getEnv("APP_PORT", "8080"),
			Version:       getEnv("APP_VERSION", "1.0.0"),
			PublicBaseURL: getEnv("APP_PUBLIC_BASE_URL", "http://localhost:8080"),
			OpTimeout:     opTimeout,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "lostfound"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvInt("DB_MAX_CONNS", 25),
			MinConns: getEnvInt("DB_MIN_CONNS", 5),
		},
		Storage: StorageConfig{
			Driver:    getEnv("STORAGE_DRIVER", "local"),
			UploadDir: getEnv("STORAGE_UPLOAD_DIR", "./uploads"),
			URLPrefix: getEnv("STORAGE_URL_PREFIX", "/uploads"),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "lostfound"),
			UseSSL:    false,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that the loaded config is usable.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "local", "minio":
	default:
		return fmt.Errorf("STORAGE_DRIVER must be 'local' or 'minio', got %q", c.Storage.Driver)
	}

	if c.App.Environment == "production" && c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD must be set in production")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
