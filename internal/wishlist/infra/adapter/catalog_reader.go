package adapter

import (
	"context"

	catalogapp "github.com/HamsavardhanS/Zyno-Sample/internal/catalog/app"
	"github.com/HamsavardhanS/Zyno-Sample/internal/wishlist/domain"
)

type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) GetProduct(ctx context.Context, productID string) (domain.Entry, error) {
	p, err := r.svc.GetProduct(ctx, productID)
	if err != nil {
		return domain.Entry{}, err
	}
	return domain.Entry{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Image:         p.Image,
		Category:      string(p.Category),
	}, nil
}
