package adapter

import (
	"context"

	cartapp "github.com/HamsavardhanS/Zyno-Sample/internal/cart/app"
	catalogapp "github.com/HamsavardhanS/Zyno-Sample/internal/catalog/app"
)

type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) GetProduct(ctx context.Context, productID string) (cartapp.Product, error) {
	p, err := r.svc.GetProduct(ctx, productID)
	if err != nil {
		return cartapp.Product{}, err
	}

	return cartapp.Product{
		ID:      p.ID,
		Name:    p.Name,
		Price:   p.Price,
		Image:   p.Image,
		InStock: p.InStock,
		Sizes:   p.Sizes,
		Colors:  p.Colors,
	}, nil
}
