package kv

import (
	"context"
	"errors"
	"time"

	"github.com/HamsavardhanS/Zyno-Sample/internal/checkout/domain"
	"github.com/HamsavardhanS/Zyno-Sample/internal/scratch"
)

const keyPrefix = "pendingOrder:"

// PendingOrderRepo stores one pending order per shopper, overwritten wholesale
// on every save.
type PendingOrderRepo struct {
	store scratch.Store
	ttl   time.Duration
}

func NewPendingOrderRepo(store scratch.Store, ttl time.Duration) *PendingOrderRepo {
	return &PendingOrderRepo{store: store, ttl: ttl}
}

func (r *PendingOrderRepo) Get(ctx context.Context, shopperID string) (domain.PendingOrder, error) {
	var order domain.PendingOrder
	err := scratch.GetJSON(ctx, r.store, keyPrefix+shopperID, &order)
	if errors.Is(err, scratch.ErrNotFound) {
		return domain.PendingOrder{}, domain.ErrNoPendingOrder
	}
	if err != nil {
		return domain.PendingOrder{}, err
	}
	return order, nil
}

func (r *PendingOrderRepo) Save(ctx context.Context, shopperID string, order domain.PendingOrder) error {
	return scratch.SetJSON(ctx, r.store, keyPrefix+shopperID, order, r.ttl)
}

func (r *PendingOrderRepo) Delete(ctx context.Context, shopperID string) error {
	return r.store.Delete(ctx, keyPrefix+shopperID)
}
