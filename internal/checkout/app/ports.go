package app

import (
	"context"

	"github.com/HamsavardhanS/Zyno-Sample/internal/checkout/domain"
)

type CartReader interface {
	GetCart(ctx context.Context, shopperID string) ([]domain.LineItem, error)
}

type CatalogReader interface {
	GetProduct(ctx context.Context, productID string) (Product, error)
}

type Product struct {
	ID      string
	Name    string
	InStock bool
}

// PendingOrderRepo holds at most one pending order per shopper. Get returns
// domain.ErrNoPendingOrder when the slot is empty.
type PendingOrderRepo interface {
	Get(ctx context.Context, shopperID string) (domain.PendingOrder, error)
	Save(ctx context.Context, shopperID string, order domain.PendingOrder) error
	Delete(ctx context.Context, shopperID string) error
}
