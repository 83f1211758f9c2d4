// Package scratch holds small keyed documents that must outlive a single
// request: carts, wishlists and the pending order handed from checkout to
// payment. Values are opaque bytes; GetJSON and SetJSON cover the common case.
package scratch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var ErrNotFound = errors.New("scratch: key not found")

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	// Set overwrites the value wholesale. ttl <= 0 keeps it until deleted.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete is a no-op for a missing key.
	Delete(ctx context.Context, key string) error
}

func GetJSON(ctx context.Context, s Store, key string, dst any) error {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func SetJSON(ctx context.Context, s Store, key string, v any, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Set(ctx, key, raw, ttl)
}
