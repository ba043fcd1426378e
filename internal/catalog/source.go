package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Source supplies the ordered product list for a storefront process.
type Source interface {
	Load(ctx context.Context) ([]Product, error)
}

type document struct {
	Products []Product `yaml:"products"`
}

// DecodeYAML reads a catalog document of the form `products: [...]`.
func DecodeYAML(r io.Reader) ([]Product, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return []Product{}, nil
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if doc.Products == nil {
		doc.Products = []Product{}
	}
	return doc.Products, nil
}

// EncodeYAML writes products in the format DecodeYAML reads.
func EncodeYAML(w io.Writer, products []Product) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{Products: products}); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return enc.Close()
}

// --------------------------------------------------
// Embedded fixture
// --------------------------------------------------

//go:embed fixture/catalog.yaml
var fixtureYAML []byte

// FixtureSource serves the catalog compiled into the binary.
type FixtureSource struct{}

func (FixtureSource) Load(ctx context.Context) ([]Product, error) {
	return DecodeYAML(bytes.NewReader(fixtureYAML))
}

// Fixture returns the embedded catalog, panicking if it does not decode.
// Intended for tests and seeding.
func Fixture() []Product {
	products, err := FixtureSource{}.Load(context.Background())
	if err != nil {
		panic(err)
	}
	return products
}

// --------------------------------------------------
// YAML file
// --------------------------------------------------

// FileSource reads a catalog document from disk.
type FileSource struct {
	Path string
}

func (s FileSource) Load(ctx context.Context) ([]Product, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()

	return DecodeYAML(f)
}
