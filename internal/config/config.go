package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

const (
	SourceFixture  = "fixture"
	SourceFile     = "file"
	SourcePostgres = "postgres"
	SourceSQLite   = "sqlite"
	SourceS3       = "s3"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Env      string
	LogLevel string
	HTTPAddr string

	SessionSecret string
	SessionTTL    time.Duration

	CatalogSource string
	CatalogFile   string
	DatabaseURL   string
	SQLitePath    string

	S3 S3Config

	ImageBaseURL string
	CORSOrigins  []string
}

type S3Config struct {
	Endpoint   string
	Region     string
	AccessKey  string
	SecretKey  string
	Bucket     string
	CatalogKey string
	PublicURL  string
}

func (c Config) Production() bool {
	return c.Env == "production"
}

// Load reads the process environment and validates it for serving.
func Load() (Config, error) {
	cfg, err := Read()
	if err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// Read parses the process environment without validating it. Outside
// production a .env file in the working directory is merged in first;
// existing variables win.
func Read() (Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "2h"))
	if err != nil {
		return Config{}, fmt.Errorf("%w: SESSION_TTL: %v", ErrInvalidConfig, err)
	}

	cfg := Config{
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),

		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionTTL:    ttl,

		CatalogSource: strings.ToLower(getEnv("CATALOG_SOURCE", SourceFixture)),
		CatalogFile:   os.Getenv("CATALOG_FILE"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SQLitePath:    getEnv("SQLITE_PATH", "freshmart.db"),

		S3: S3Config{
			Endpoint:   os.Getenv("S3_ENDPOINT"),
			Region:     getEnv("S3_REGION", "auto"),
			AccessKey:  os.Getenv("S3_ACCESS_KEY"),
			SecretKey:  os.Getenv("S3_SECRET_KEY"),
			Bucket:     os.Getenv("S3_BUCKET"),
			CatalogKey: getEnv("S3_CATALOG_KEY", "catalog.yaml"),
			PublicURL:  os.Getenv("S3_PUBLIC_BASE_URL"),
		},

		ImageBaseURL: os.Getenv("IMAGE_BASE_URL"),
		CORSOrigins:  splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")),
	}

	if cfg.SessionSecret == "" && !cfg.Production() {
		cfg.SessionSecret = uuid.NewString()
	}

	return cfg, nil
}

// Validate checks the session settings and the selected catalog source.
func (c Config) Validate() error {
	if c.SessionSecret == "" {
		return fmt.Errorf("%w: missing env var(s): SESSION_SECRET", ErrInvalidConfig)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("%w: SESSION_TTL must be positive", ErrInvalidConfig)
	}
	return c.ValidateCatalog()
}

// ValidateCatalog reports every missing key the selected catalog source needs.
func (c Config) ValidateCatalog() error {
	var missing []string
	require := func(key, value string) {
		if value == "" {
			missing = append(missing, key)
		}
	}

	switch c.CatalogSource {
	case SourceFixture:
	case SourceFile:
		require("CATALOG_FILE", c.CatalogFile)
	case SourcePostgres:
		require("DATABASE_URL", c.DatabaseURL)
	case SourceSQLite:
		require("SQLITE_PATH", c.SQLitePath)
	case SourceS3:
		c.requireS3(require)
	default:
		return fmt.Errorf("%w: unknown CATALOG_SOURCE %q", ErrInvalidConfig, c.CatalogSource)
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing env var(s): %s", ErrInvalidConfig, strings.Join(missing, ", "))
	}
	return nil
}

// ValidateS3 checks only the bucket settings, for tools that push to the
// bucket regardless of the serving source.
func (c Config) ValidateS3() error {
	var missing []string
	c.requireS3(func(key, value string) {
		if value == "" {
			missing = append(missing, key)
		}
	})
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing env var(s): %s", ErrInvalidConfig, strings.Join(missing, ", "))
	}
	return nil
}

func (c Config) requireS3(require func(key, value string)) {
	require("S3_ENDPOINT", c.S3.Endpoint)
	require("S3_ACCESS_KEY", c.S3.AccessKey)
	require("S3_SECRET_KEY", c.S3.SecretKey)
	require("S3_BUCKET", c.S3.Bucket)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
