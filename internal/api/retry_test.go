package api

import (
	"context"
	"testing"
	"time"
)

func TestDefaultRetryConfig(t *testing.T) {
	cfg := DefaultRetryConfig()

	if cfg.MaxRetries != DefaultMaxRetries {
		t.Errorf("MaxRetries = %d, want %d", cfg.MaxRetries, DefaultMaxRetries)
	}
	if cfg.BaseDelay != DefaultRetryDelay {
		t.Errorf("BaseDelay = %v, want %v", cfg.BaseDelay, DefaultRetryDelay)
	}

	retryable := []int{408, 429, 500, 502, 503, 504}
	for _, code := range retryable {
		if !cfg.Retryable(code) {
			t.Errorf("Retryable(%d) = false, want true", code)
		}
	}
	notRetryable := []int{200, 201, 204, 400, 401, 403, 404, 409, 422}
	for _, code := range notRetryable {
		if cfg.Retryable(code) {
			t.Errorf("Retryable(%d) = true, want false", code)
		}
	}
}

func TestRetryDelay_Backoff(t *testing.T) {
	cfg := &RetryConfig{
		BaseDelay:  100 * time.Millisecond,
		MaxDelay:   time.Second,
		Multiplier: 2.0,
		Jitter:     0, // deterministic
	}

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{0, 100 * time.Millisecond},
		{1, 200 * time.Millisecond},
		{2, 400 * time.Millisecond},
		{3, 800 * time.Millisecond},
		{4, time.Second}, // capped
		{10, time.Second},
	}

	for _, tt := range tests {
		if got := cfg.Delay(tt.attempt); got != tt.want {
			t.Errorf("Delay(%d) = %v, want %v", tt.attempt, got, tt.want)
		}
	}
}

func TestRetryDelay_JitterBounds(t *testing.T) {
	cfg := &RetryConfig{
		BaseDelay:  100 * time.Millisecond,
		MaxDelay:   time.Second,
		Multiplier: 2.0,
		Jitter:     0.2,
	}

	for i := 0; i < 100; i++ {
		got := cfg.Delay(0)
		if got < 80*time.Millisecond || got > 120*time.Millisecond {
			t.Fatalf("Delay(0) = %v, want within [80ms, 120ms]", got)
		}
	}
}

func TestRetryWait_RespectsContext(t *testing.T) {
	cfg := &RetryConfig{
		BaseDelay:  10 * time.Second,
		MaxDelay:   10 * time.Second,
		Multiplier: 1.0,
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := cfg.Wait(ctx, 0); err != context.Canceled {
		t.Errorf("Wait() = %v, want context.Canceled", err)
	}
}

func TestRetryWait_CompletesAfterDelay(t *testing.T) {
	cfg := &RetryConfig{
		BaseDelay:  time.Millisecond,
		MaxDelay:   time.Millisecond,
		Multiplier: 1.0,
	}

	if err := cfg.Wait(context.Background(), 0); err != nil {
		t.Errorf("Wait() error = %v", err)
	}
}
