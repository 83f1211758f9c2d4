package static

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/HamsavardhanS/Zyno-Sample/internal/catalog/app"
	"github.com/HamsavardhanS/Zyno-Sample/internal/catalog/domain"
	"gopkg.in/yaml.v3"
)

//go:embed products.yaml
var seed []byte

// ProductRepo serves a fixed product list. It is safe for concurrent use
// because nothing mutates it after construction.
type ProductRepo struct {
	products []domain.Product
	byID     map[string]int
}

func NewProductRepo() (*ProductRepo, error) {
	return NewProductRepoFromYAML(seed)
}

func NewProductRepoFromYAML(data []byte) (*ProductRepo, error) {
	var products []domain.Product
	if err := yaml.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return NewProductRepoFromList(products)
}

func NewProductRepoFromList(products []domain.Product) (*ProductRepo, error) {
	r := &ProductRepo{
		products: make([]domain.Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	for i, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("product %d: missing id", i)
		}
		if _, dup := r.byID[p.ID]; dup {
			return nil, fmt.Errorf("product %s: duplicate id", p.ID)
		}
		if !p.Category.Valid() {
			return nil, fmt.Errorf("product %s: unknown category %q", p.ID, p.Category)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("product %s: negative price", p.ID)
		}
		r.byID[p.ID] = len(r.products)
		r.products = append(r.products, p.Clone())
	}
	return r, nil
}

func (r *ProductRepo) Get(_ context.Context, id string) (domain.Product, error) {
	idx, ok := r.byID[id]
	if !ok {
		return domain.Product{}, app.ErrNotFound
	}
	return r.products[idx].Clone(), nil
}

func (r *ProductRepo) List(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p.Clone())
	}
	return out, nil
}
