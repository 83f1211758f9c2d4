package app

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/HamsavardhanS/Zyno-Sample/internal/payment/domain"
)

// processingGrace is added to the settlement delay before a processing
// session counts as abandoned.
const processingGrace = time.Minute

type Config struct {
	PayeeID      string
	PayeeName    string
	MerchantCode string

	Mode        domain.Mode
	FailureRate float64

	Timeout         time.Duration
	SettlementDelay time.Duration
}

func (c Config) withDefaults() Config {
	if c.Mode == "" {
		c.Mode = domain.ModeManual
	}
	if c.Timeout <= 0 {
		c.Timeout = 600 * time.Second
	}
	if c.SettlementDelay < 0 {
		c.SettlementDelay = 0
	}
	if c.PayeeName == "" {
		c.PayeeName = "ZYNO Store"
	}
	return c
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithSleeper replaces the settlement wait.
func WithSleeper(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(s *Service) { s.sleep = sleep }
}

func WithRandom(r Random) Option {
	return func(s *Service) { s.rand = r }
}

func WithLogger(log *slog.Logger) Option {
	return func(s *Service) { s.log = log }
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func defaultRandom() Random {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
