package kv

import (
	"context"
	"testing"
	"time"

	"github.com/HamsavardhanS/Zyno-Sample/internal/cart/app"
	"github.com/HamsavardhanS/Zyno-Sample/internal/cart/domain"
	"github.com/HamsavardhanS/Zyno-Sample/internal/scratch"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepoOnRedis(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	repo := NewCartRepo(scratch.NewRedis(client, "zyno:"), time.Hour)

	_, err := repo.Get(ctx, "shopper-1")
	assert.ErrorIs(t, err, app.ErrCartNotFound)

	cart := domain.Cart{ID: "c1", ShopperID: "shopper-1"}
	require.NoError(t, cart.Add(domain.CartItem{ProductID: "2", Name: "T-Rex", Price: 599, Size: "M"}, 2))
	require.NoError(t, repo.Save(ctx, cart))
	assert.Equal(t, time.Hour, mr.TTL("zyno:cart:shopper-1"))

	got, err := repo.Get(ctx, "shopper-1")
	require.NoError(t, err)
	assert.Equal(t, cart.Items, got.Items)
	assert.Equal(t, int64(1198), got.Subtotal())

	require.NoError(t, repo.Delete(ctx, "shopper-1"))
	_, err = repo.Get(ctx, "shopper-1")
	assert.ErrorIs(t, err, app.ErrCartNotFound)
}
