package app

import (
	"context"

	"github.com/HamsavardhanS/Zyno-Sample/internal/cart/domain"
)

type CartRepo interface {
	// Get returns ErrCartNotFound when the shopper has no cart yet.
	Get(ctx context.Context, shopperID string) (domain.Cart, error)
	Save(ctx context.Context, cart domain.Cart) error
	Delete(ctx context.Context, shopperID string) error
}

type CatalogReader interface {
	GetProduct(ctx context.Context, productID string) (Product, error)
}

type Product struct {
	ID      string
	Name    string
	Price   int64
	Image   string
	InStock bool
	Sizes   []string
	Colors  []string
}
