package shutdown

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestGracefulStopsInTime(t *testing.T) {
	var forced atomic.Bool
	ok := Graceful(time.Second, func() {}, func() { forced.Store(true) })
	if !ok || forced.Load() {
		t.Fatalf("expected clean stop, ok=%v forced=%v", ok, forced.Load())
	}
}

func TestGracefulForcesOnTimeout(t *testing.T) {
	block := make(chan struct{})
	defer close(block)

	var forced atomic.Bool
	ok := Graceful(10*time.Millisecond, func() { <-block }, func() { forced.Store(true) })
	if ok || !forced.Load() {
		t.Fatalf("expected forced stop, ok=%v forced=%v", ok, forced.Load())
	}
}

func TestWithSignalsCancelPropagates(t *testing.T) {
	ctx, cancel := WithSignals(context.Background(), nil)
	cancel()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context not cancelled")
	}
}
