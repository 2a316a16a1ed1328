// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/canonical/tenant-auth-service/internal/apierror"
	"github.com/canonical/tenant-auth-service/internal/kv"
	"github.com/canonical/tenant-auth-service/internal/logging"
	"github.com/canonical/tenant-auth-service/internal/monitoring"
	"github.com/canonical/tenant-auth-service/internal/tracing"
)

func newTestLimiter(store *kv.InMemory, limit int64, window time.Duration) *Limiter {
	l := NewLimiter(store, limit, window, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	l.now = store.Now

	return l
}

func TestAllowWithinLimit(t *testing.T) {
	store := kv.NewInMemory()
	l := newTestLimiter(store, 10, 5*time.Minute)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		if err := l.Allow(ctx, "login:t1:user@example.com"); err != nil {
			t.Fatalf("hit %d: expected no error, got %v", i+1, err)
		}
	}
}

func TestAllowExceedsLimit(t *testing.T) {
	store := kv.NewInMemory()
	l := newTestLimiter(store, 10, 5*time.Minute)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		if err := l.Allow(ctx, "login:t1:user@example.com"); err != nil {
			t.Fatalf("hit %d: expected no error, got %v", i+1, err)
		}
	}

	err := l.Allow(ctx, "login:t1:user@example.com")
	if !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("expected ErrLimitExceeded, got %v", err)
	}

	if !errors.Is(err, apierror.ErrRateLimited) {
		t.Fatalf("expected error to map to rate_limited, got %v", err)
	}
}

func TestAllowResetsNextWindow(t *testing.T) {
	store := kv.NewInMemory()
	l := newTestLimiter(store, 1, 5*time.Minute)
	ctx := context.Background()

	if err := l.Allow(ctx, "k"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := l.Allow(ctx, "k"); !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("expected ErrLimitExceeded, got %v", err)
	}

	store.Advance(5 * time.Minute)

	if err := l.Allow(ctx, "k"); err != nil {
		t.Fatalf("expected new window to allow, got %v", err)
	}
}

func TestAllowKeysAreIndependent(t *testing.T) {
	store := kv.NewInMemory()
	l := newTestLimiter(store, 1, 5*time.Minute)
	ctx := context.Background()

	if err := l.Allow(ctx, "a"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := l.Allow(ctx, "b"); err != nil {
		t.Fatalf("expected independent key to allow, got %v", err)
	}
}
