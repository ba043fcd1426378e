package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrNotFound = errors.New("product not found")

// Service holds the catalog loaded at start-up and answers read queries
// against it. It never mutates the loaded products.
type Service struct {
	products     []Product
	byID         map[string]int
	categories   []Category
	imageBaseURL string
}

// NewService loads the catalog once from src and validates it.
func NewService(ctx context.Context, src Source, imageBaseURL string) (*Service, error) {
	products, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if err := Validate(products); err != nil {
		return nil, err
	}

	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}

	return &Service{
		products:     products,
		byID:         byID,
		categories:   DefaultCategories(),
		imageBaseURL: strings.TrimRight(imageBaseURL, "/"),
	}, nil
}

// All returns the full catalog in display order.
func (s *Service) All() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Service) Len() int {
	return len(s.products)
}

func (s *Service) Get(id string) (Product, error) {
	i, ok := s.byID[id]
	if !ok {
		return Product{}, ErrNotFound
	}
	return s.products[i], nil
}

func (s *Service) Filter(query, category string) []Product {
	return Filter(s.products, query, category)
}

func (s *Service) Categories() []Category {
	out := make([]Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// ImageURL resolves a product's image reference. Absolute references are
// returned untouched; relative ones are joined onto the image base URL.
func (s *Service) ImageURL(p Product) string {
	if p.Image == "" || s.imageBaseURL == "" {
		return p.Image
	}
	if strings.HasPrefix(p.Image, "http://") || strings.HasPrefix(p.Image, "https://") {
		return p.Image
	}
	return fmt.Sprintf("%s/%s", s.imageBaseURL, strings.TrimLeft(p.Image, "/"))
}
