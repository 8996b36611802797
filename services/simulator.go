package services

import (
	"context"
	"time"
)

// Default latencies of the simulated backend calls.
const (
	DefaultScanDelay = 2 * time.Second
	DefaultDietDelay = 1500 * time.Millisecond
	DefaultChatDelay = 1500 * time.Millisecond
)

// Simulator stands in for a remote call: it waits Delay and then lets the
// caller resolve with a static payload. Unlike a bare sleep it stops early
// when ctx is done, so callers see the same errors a real backend would give.
type Simulator struct {
	Delay time.Duration
}

func (s Simulator) Wait(ctx context.Context) error {
	if s.Delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
