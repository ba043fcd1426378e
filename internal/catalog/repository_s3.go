package catalog

import (
	"bytes"
	"context"
	"fmt"
	"io"
)

// ObjectStore is the slice of the blob store the catalog needs.
type ObjectStore interface {
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Put(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

// S3Source reads a YAML catalog document from an object store.
type S3Source struct {
	store ObjectStore
	key   string
}

func NewS3Source(store ObjectStore, key string) *S3Source {
	return &S3Source{store: store, key: key}
}

func (s *S3Source) Load(ctx context.Context) ([]Product, error) {
	body, err := s.store.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog object %q: %w", s.key, err)
	}
	defer body.Close()

	return DecodeYAML(body)
}

// Replace uploads products as the catalog document and returns its URL.
func (s *S3Source) Replace(ctx context.Context, products []Product) (string, error) {
	if err := Validate(products); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := EncodeYAML(&buf, products); err != nil {
		return "", err
	}

	url, err := s.store.Put(ctx, s.key, &buf, "application/yaml")
	if err != nil {
		return "", fmt.Errorf("upload catalog object %q: %w", s.key, err)
	}
	return url, nil
}
