// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import "context"

// ClientInterface is the boundary to the transactional email provider.
// All sends are fire-and-forget: failures are logged by callers and never
// propagated as request failures.
type ClientInterface interface {
	SendWelcome(ctx context.Context, toEmail, tenantName string) error
	Enabled() bool
}
