package config

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"LOG_LEVEL", "HTTP_ADDR", "SESSION_SECRET", "SESSION_TTL",
		"CATALOG_SOURCE", "CATALOG_FILE", "DATABASE_URL", "SQLITE_PATH",
		"S3_ENDPOINT", "S3_REGION", "S3_ACCESS_KEY", "S3_SECRET_KEY",
		"S3_BUCKET", "S3_CATALOG_KEY", "S3_PUBLIC_BASE_URL",
		"IMAGE_BASE_URL", "CORS_ORIGINS",
	} {
		t.Setenv(k, "")
	}
	// production skips the .env file so the test sees only what it sets
	t.Setenv("APP_ENV", "production")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, SourceFixture, cfg.CatalogSource)
	assert.Equal(t, "freshmart.db", cfg.SQLitePath)
	assert.Equal(t, "auto", cfg.S3.Region)
	assert.Equal(t, "catalog.yaml", cfg.S3.CatalogKey)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.CORSOrigins)
	assert.True(t, cfg.Production())
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}

func TestLoad_DevelopmentGeneratesSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "development")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load()
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.SessionSecret)
}

func TestLoad_BadTTL(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_SECRET", "x")
	t.Setenv("SESSION_TTL", "forever")

	_, err := Load()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate_PerSource(t *testing.T) {
	base := Config{SessionSecret: "x", SessionTTL: time.Hour}

	cases := []struct {
		name    string
		mutate  func(*Config)
		missing []string
	}{
		{"fixture", func(c *Config) { c.CatalogSource = SourceFixture }, nil},
		{"file without path", func(c *Config) { c.CatalogSource = SourceFile }, []string{"CATALOG_FILE"}},
		{"postgres without dsn", func(c *Config) { c.CatalogSource = SourcePostgres }, []string{"DATABASE_URL"}},
		{"sqlite with path", func(c *Config) {
			c.CatalogSource = SourceSQLite
			c.SQLitePath = "x.db"
		}, nil},
		{"s3 partial", func(c *Config) {
			c.CatalogSource = SourceS3
			c.S3.Endpoint = "https://r2.example"
			c.S3.Bucket = "b"
		}, []string{"S3_ACCESS_KEY", "S3_SECRET_KEY"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			err := cfg.Validate()
			if len(tc.missing) == 0 {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidConfig)
			for _, key := range tc.missing {
				assert.Contains(t, err.Error(), key)
			}
		})
	}
}

func TestValidate_UnknownSource(t *testing.T) {
	cfg := Config{SessionSecret: "x", SessionTTL: time.Hour, CatalogSource: "mongo"}
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a , ,b "))
	assert.Nil(t, splitList(""))
}
