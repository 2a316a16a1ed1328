// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package ratelimit implements a fixed window rate limiter on top of the
// key-value store. Windows are aligned to the epoch, so a burst that
// straddles a boundary can see up to twice the limit. That is the usual
// tradeoff of the scheme and is acceptable for the flows it guards.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/canonical/tenant-auth-service/internal/apierror"
	"github.com/canonical/tenant-auth-service/internal/kv"
	"github.com/canonical/tenant-auth-service/internal/logging"
	"github.com/canonical/tenant-auth-service/internal/monitoring"
	"github.com/canonical/tenant-auth-service/internal/tracing"
)

// ErrLimitExceeded wraps the api error so handlers map it to 429 directly.
var ErrLimitExceeded = fmt.Errorf("%w: rate limit exceeded", apierror.ErrRateLimited)

const bucketKeyPrefix = "rl:"

var _ LimiterInterface = (*Limiter)(nil)

type Limiter struct {
	store  kv.KVInterface
	limit  int64
	window time.Duration

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewLimiter(store kv.KVInterface, limit int64, window time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Limiter {
	l := new(Limiter)

	l.store = store
	l.limit = limit
	l.window = window
	l.now = time.Now

	l.tracer = tracer
	l.monitor = monitor
	l.logger = logger

	return l
}

func (l *Limiter) Allow(ctx context.Context, key string) error {
	ctx, span := l.tracer.Start(ctx, "ratelimit.Limiter.Allow")
	defer span.End()

	windowSecs := int64(l.window / time.Second)
	bucket := fmt.Sprintf("%s%s:%d", bucketKeyPrefix, key, l.now().Unix()/windowSecs)

	n, err := l.store.Incr(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	// Only the first hit sets the expiry, later hits must not extend it.
	if n == 1 {
		if err := l.store.Expire(ctx, bucket, l.window); err != nil {
			return fmt.Errorf("failed to expire rate limit counter: %w", err)
		}
	}

	if n > l.limit {
		return ErrLimitExceeded
	}

	return nil
}
