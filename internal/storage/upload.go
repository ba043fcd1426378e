package storage

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// UploadDir uploads every regular file directly inside dir under prefix and
// returns the public URLs keyed by file name.
func (c *Client) UploadDir(ctx context.Context, dir, prefix string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	urls := make(map[string]string, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		key := strings.TrimLeft(strings.TrimRight(prefix, "/")+"/"+e.Name(), "/")
		url, err := c.UploadFile(ctx, key, filepath.Join(dir, e.Name()))
		if err != nil {
			return urls, err
		}
		urls[e.Name()] = url
	}
	return urls, nil
}

// UploadFile uploads a local file, deriving its content type from the
// extension.
func (c *Client) UploadFile(ctx context.Context, key, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return c.Put(ctx, key, f, contentType)
}
