// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import "context"

var _ ClientInterface = (*NoopClient)(nil)

// NoopClient is used when no email provider is configured.
type NoopClient struct{}

func NewNoopClient() *NoopClient {
	return new(NoopClient)
}

func (c *NoopClient) Enabled() bool {
	return false
}

func (c *NoopClient) SendWelcome(context.Context, string, string) error {
	return nil
}
