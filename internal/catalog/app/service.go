package app

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/HamsavardhanS/Zyno-Sample/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

const (
	relatedLimit    = 4
	suggestionLimit = 5
	suggestNames    = 3
	suggestCategory = 2
	featuredLimit   = 6
)

type Service struct {
	repo ProductRepo
}

func NewService(repo ProductRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Product{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByCategory(ctx context.Context, category domain.Category) ([]domain.Product, error) {
	if !category.Valid() {
		return nil, ErrInvalidInput
	}
	return s.filter(ctx, func(p domain.Product) bool { return p.Category == category })
}

// Search matches query case-insensitively against name, description and
// category. An empty query matches every product.
func (s *Service) Search(ctx context.Context, query string) ([]domain.Product, error) {
	q := strings.ToLower(query)
	return s.filter(ctx, func(p domain.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(string(p.Category)), q)
	})
}

func (s *Service) RelatedProducts(ctx context.Context, id string, category domain.Category) ([]domain.Product, error) {
	related, err := s.filter(ctx, func(p domain.Product) bool {
		return p.Category == category && p.ID != id
	})
	if err != nil {
		return nil, err
	}
	if len(related) > relatedLimit {
		related = related[:relatedLimit]
	}
	return related, nil
}

// SearchSuggestions returns up to three matching product names followed by up
// to two matching categories, deduplicated and capped at five.
func (s *Service) SearchSuggestions(ctx context.Context, query string) ([]string, error) {
	if strings.TrimSpace(query) == "" {
		return []string{}, nil
	}

	results, err := s.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	candidates := make([]string, 0, suggestNames+suggestCategory)
	for i, p := range results {
		if i == suggestNames {
			break
		}
		candidates = append(candidates, p.Name)
	}

	var categories []string
	for _, p := range results {
		c := string(p.Category)
		if !slices.Contains(categories, c) {
			categories = append(categories, c)
		}
		if len(categories) == suggestCategory {
			break
		}
	}
	candidates = append(candidates, categories...)

	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if !slices.Contains(out, c) {
			out = append(out, c)
		}
		if len(out) == suggestionLimit {
			break
		}
	}
	return out, nil
}

func (s *Service) FeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	featured, err := s.filter(ctx, func(p domain.Product) bool { return p.IsBestseller || p.IsNew })
	if err != nil {
		return nil, err
	}
	if len(featured) > featuredLimit {
		featured = featured[:featuredLimit]
	}
	return featured, nil
}

func (s *Service) filter(ctx context.Context, keep func(domain.Product) bool) ([]domain.Product, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0, len(all))
	for _, p := range all {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out, nil
}
