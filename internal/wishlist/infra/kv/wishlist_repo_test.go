package kv

import (
	"context"
	"testing"

	"github.com/HamsavardhanS/Zyno-Sample/internal/scratch"
	"github.com/HamsavardhanS/Zyno-Sample/internal/wishlist/app"
	"github.com/HamsavardhanS/Zyno-Sample/internal/wishlist/domain"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistRepoOnRedis(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	repo := NewWishlistRepo(scratch.NewRedis(client, "zyno:"), 0)

	_, err := repo.Get(ctx, "s1")
	assert.ErrorIs(t, err, app.ErrWishlistNotFound)

	w := domain.Wishlist{ShopperID: "s1"}
	w.Add(domain.Entry{ID: "3", Name: "Raptor Pack Polaroid Set", Price: 399, OriginalPrice: 599, Category: "polaroids"})
	require.NoError(t, repo.Save(ctx, w))
	assert.True(t, mr.Exists("zyno:wishlist:s1"))

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, w.Entries, got.Entries)
}
