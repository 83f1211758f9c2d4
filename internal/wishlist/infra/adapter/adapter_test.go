package adapter

import (
	"context"
	"testing"

	cartapp "github.com/HamsavardhanS/Zyno-Sample/internal/cart/app"
	cartadapter "github.com/HamsavardhanS/Zyno-Sample/internal/cart/infra/adapter"
	cartkv "github.com/HamsavardhanS/Zyno-Sample/internal/cart/infra/kv"
	catalogapp "github.com/HamsavardhanS/Zyno-Sample/internal/catalog/app"
	"github.com/HamsavardhanS/Zyno-Sample/internal/catalog/infra/static"
	"github.com/HamsavardhanS/Zyno-Sample/internal/scratch"
	wishlistapp "github.com/HamsavardhanS/Zyno-Sample/internal/wishlist/app"
	wishlistkv "github.com/HamsavardhanS/Zyno-Sample/internal/wishlist/infra/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveToCartAgainstRealStores(t *testing.T) {
	ctx := context.Background()
	products, err := static.NewProductRepo()
	require.NoError(t, err)
	catalog := catalogapp.NewService(products)

	store := scratch.NewMemory()
	carts := cartapp.NewService(cartkv.NewCartRepo(store, 0), cartadapter.NewCatalogServiceReader(catalog))
	wishlists := wishlistapp.NewService(
		wishlistkv.NewWishlistRepo(store, 0),
		NewCatalogServiceReader(catalog),
		NewCartServiceWriter(carts),
	)

	w, err := wishlists.AddProduct(ctx, "s1", "3")
	require.NoError(t, err)
	require.Len(t, w.Entries, 1)
	assert.Equal(t, "polaroids", w.Entries[0].Category)
	assert.Equal(t, int64(599), w.Entries[0].OriginalPrice)

	_, err = wishlists.MoveToCart(ctx, "s1", "3")
	require.NoError(t, err)

	cart, err := carts.GetCart(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "3", cart.Items[0].ProductID)
	assert.Equal(t, 1, cart.Items[0].Quantity)

	in, err := wishlists.Has(ctx, "s1", "3")
	require.NoError(t, err)
	assert.False(t, in)
}
