package services

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSimulatorWaitsForDelay(t *testing.T) {
	sim := Simulator{Delay: 20 * time.Millisecond}

	start := time.Now()
	if err := sim.Wait(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("expected to wait at least 20ms, waited %v", elapsed)
	}
}

func TestSimulatorHonoursCancellation(t *testing.T) {
	sim := Simulator{Delay: time.Minute}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := sim.Wait(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
}

func TestSimulatorZeroDelay(t *testing.T) {
	if err := (Simulator{}).Wait(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := (Simulator{}).Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected canceled, got %v", err)
	}
}
