package kv

import (
	"context"
	"errors"
	"time"

	"github.com/HamsavardhanS/Zyno-Sample/internal/cart/app"
	"github.com/HamsavardhanS/Zyno-Sample/internal/cart/domain"
	"github.com/HamsavardhanS/Zyno-Sample/internal/scratch"
)

const keyPrefix = "cart:"

type CartRepo struct {
	store scratch.Store
	ttl   time.Duration
}

// NewCartRepo keeps each cart for ttl after its last write; ttl <= 0 keeps it
// indefinitely.
func NewCartRepo(store scratch.Store, ttl time.Duration) *CartRepo {
	return &CartRepo{store: store, ttl: ttl}
}

func (r *CartRepo) Get(ctx context.Context, shopperID string) (domain.Cart, error) {
	var cart domain.Cart
	err := scratch.GetJSON(ctx, r.store, keyPrefix+shopperID, &cart)
	if errors.Is(err, scratch.ErrNotFound) {
		return domain.Cart{}, app.ErrCartNotFound
	}
	if err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}

func (r *CartRepo) Save(ctx context.Context, cart domain.Cart) error {
	return scratch.SetJSON(ctx, r.store, keyPrefix+cart.ShopperID, cart, r.ttl)
}

func (r *CartRepo) Delete(ctx context.Context, shopperID string) error {
	return r.store.Delete(ctx, keyPrefix+shopperID)
}
