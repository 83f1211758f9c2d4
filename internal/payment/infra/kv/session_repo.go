package kv

import (
	"context"
	"errors"
	"time"

	"github.com/HamsavardhanS/Zyno-Sample/internal/payment/app"
	"github.com/HamsavardhanS/Zyno-Sample/internal/payment/domain"
	"github.com/HamsavardhanS/Zyno-Sample/internal/scratch"
)

const keyPrefix = "paymentSession:"

type SessionRepo struct {
	store scratch.Store
	ttl   time.Duration
}

func NewSessionRepo(store scratch.Store, ttl time.Duration) *SessionRepo {
	return &SessionRepo{store: store, ttl: ttl}
}

func (r *SessionRepo) Get(ctx context.Context, shopperID string) (domain.Session, error) {
	var s domain.Session
	err := scratch.GetJSON(ctx, r.store, keyPrefix+shopperID, &s)
	if errors.Is(err, scratch.ErrNotFound) {
		return domain.Session{}, app.ErrNoSession
	}
	if err != nil {
		return domain.Session{}, err
	}
	return s, nil
}

func (r *SessionRepo) Save(ctx context.Context, s domain.Session) error {
	return scratch.SetJSON(ctx, r.store, keyPrefix+s.ShopperID, s, r.ttl)
}

func (r *SessionRepo) Delete(ctx context.Context, shopperID string) error {
	return r.store.Delete(ctx, keyPrefix+shopperID)
}
