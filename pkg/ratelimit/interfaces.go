// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ratelimit

import "context"

// LimiterInterface enforces a fixed window counter per logical key.
type LimiterInterface interface {
	// Allow records one hit against key and returns ErrLimitExceeded once
	// the window's budget is spent.
	Allow(ctx context.Context, key string) error
}
