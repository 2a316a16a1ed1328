// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package payments

import (
	"context"
	"errors"
)

var _ ClientInterface = (*NoopClient)(nil)

var ErrNotConfigured = errors.New("payment provider not configured")

// NoopClient is used when no payment provider is configured.
type NoopClient struct{}

func NewNoopClient() *NoopClient {
	return new(NoopClient)
}

func (c *NoopClient) Enabled() bool {
	return false
}

func (c *NoopClient) CreateCustomer(context.Context, string, string) (string, error) {
	return "", ErrNotConfigured
}

func (c *NoopClient) CreateCheckoutSession(context.Context, string, string) (string, error) {
	return "", ErrNotConfigured
}
