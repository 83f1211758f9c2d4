package adapter

import (
	"context"
	"testing"

	cartapp "github.com/HamsavardhanS/Zyno-Sample/internal/cart/app"
	cartadapter "github.com/HamsavardhanS/Zyno-Sample/internal/cart/infra/adapter"
	cartkv "github.com/HamsavardhanS/Zyno-Sample/internal/cart/infra/kv"
	catalogapp "github.com/HamsavardhanS/Zyno-Sample/internal/catalog/app"
	"github.com/HamsavardhanS/Zyno-Sample/internal/catalog/infra/static"
	checkoutapp "github.com/HamsavardhanS/Zyno-Sample/internal/checkout/app"
	"github.com/HamsavardhanS/Zyno-Sample/internal/checkout/domain"
	checkoutkv "github.com/HamsavardhanS/Zyno-Sample/internal/checkout/infra/kv"
	"github.com/HamsavardhanS/Zyno-Sample/internal/scratch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutReadsTheSharedCart(t *testing.T) {
	ctx := context.Background()
	products, err := static.NewProductRepo()
	require.NoError(t, err)
	catalog := catalogapp.NewService(products)

	store := scratch.NewMemory()
	carts := cartapp.NewService(cartkv.NewCartRepo(store, 0), cartadapter.NewCatalogServiceReader(catalog))
	checkout := checkoutapp.NewService(
		NewCartServiceReader(carts),
		NewCatalogServiceReader(catalog),
		checkoutkv.NewPendingOrderRepo(store, 0),
		domain.DefaultPricing(),
		4,
	)

	_, err = carts.AddProduct(ctx, "s1", "2", 2, "L", "Gray")
	require.NoError(t, err)

	q, err := checkout.Quote(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, q.Lines, 1)
	assert.Equal(t, "L", q.Lines[0].Size)
	assert.Equal(t, int64(1198), q.Total)

	order, err := checkout.PlaceOrder(ctx, "s1", domain.CustomerInfo{
		FirstName: "Asha", LastName: "Rao", Email: "asha@example.com", Phone: "9876543210",
		Address: "12 MG Road", City: "Mumbai", State: "Maharashtra", Pincode: "400001",
	})
	require.NoError(t, err)
	assert.Equal(t, q.Total, order.Total)

	cart, err := carts.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1, "placing an order does not clear the cart")
}
