package app

import (
	"context"

	"github.com/HamsavardhanS/Zyno-Sample/internal/wishlist/domain"
)

type WishlistRepo interface {
	// Get returns ErrWishlistNotFound when the shopper has saved nothing yet.
	Get(ctx context.Context, shopperID string) (domain.Wishlist, error)
	Save(ctx context.Context, w domain.Wishlist) error
}

type CatalogReader interface {
	GetProduct(ctx context.Context, productID string) (domain.Entry, error)
}

// CartWriter adds one unit of a product, with no variant, to the shopper's cart.
type CartWriter interface {
	AddProduct(ctx context.Context, shopperID, productID string) error
}
