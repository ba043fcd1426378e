package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"freshmart/internal/catalog"
	"freshmart/internal/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, kv map[string]string) {
	t.Helper()
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "error")
	for k, v := range kv {
		t.Setenv(k, v)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestList_Fixture(t *testing.T) {
	setEnv(t, map[string]string{"CATALOG_SOURCE": "fixture"})

	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Fresh Red Apples")
	assert.Contains(t, out, "-20%")
	assert.Contains(t, out, "6 product(s)")
}

func TestList_Filtered(t *testing.T) {
	setEnv(t, map[string]string{"CATALOG_SOURCE": "fixture"})

	out, err := execute(t, "list", "--category", "fruits", "-q", "BAN")
	require.NoError(t, err)
	assert.Contains(t, out, "Organic Bananas")
	assert.NotContains(t, out, "Fresh Red Apples")
	assert.Contains(t, out, "1 product(s)")
}

func TestSeed_SQLiteThenList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	setEnv(t, map[string]string{"CATALOG_SOURCE": "sqlite", "SQLITE_PATH": path})

	out, err := execute(t, "seed", "sqlite")
	require.NoError(t, err)
	assert.Equal(t, "seeded 6 product(s) into sqlite\n", out)

	sqlDB, err := db.OpenSQLite(path)
	require.NoError(t, err)
	defer sqlDB.Close()
	products, err := catalog.NewSQLiteSource(sqlDB).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 6)

	out, err = execute(t, "list")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "6 product(s)\n"), out)
}

func TestSeed_RejectsUnknownTarget(t *testing.T) {
	setEnv(t, nil)

	_, err := execute(t, "seed", "mongo")
	assert.Error(t, err)
}

func TestPush_RequiresBucketSettings(t *testing.T) {
	setEnv(t, map[string]string{"S3_BUCKET": "", "S3_ENDPOINT": ""})

	_, err := execute(t, "push")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "S3_BUCKET")
}
