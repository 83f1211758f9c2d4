package kv

import (
	"context"
	"errors"
	"time"

	"github.com/HamsavardhanS/Zyno-Sample/internal/scratch"
	"github.com/HamsavardhanS/Zyno-Sample/internal/wishlist/app"
	"github.com/HamsavardhanS/Zyno-Sample/internal/wishlist/domain"
)

const keyPrefix = "wishlist:"

type WishlistRepo struct {
	store scratch.Store
	ttl   time.Duration
}

func NewWishlistRepo(store scratch.Store, ttl time.Duration) *WishlistRepo {
	return &WishlistRepo{store: store, ttl: ttl}
}

func (r *WishlistRepo) Get(ctx context.Context, shopperID string) (domain.Wishlist, error) {
	var w domain.Wishlist
	err := scratch.GetJSON(ctx, r.store, keyPrefix+shopperID, &w)
	if errors.Is(err, scratch.ErrNotFound) {
		return domain.Wishlist{}, app.ErrWishlistNotFound
	}
	if err != nil {
		return domain.Wishlist{}, err
	}
	return w, nil
}

func (r *WishlistRepo) Save(ctx context.Context, w domain.Wishlist) error {
	return scratch.SetJSON(ctx, r.store, keyPrefix+w.ShopperID, w, r.ttl)
}
