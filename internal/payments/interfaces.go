// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package payments

import "context"

// ClientInterface is the boundary to the external payment provider.
type ClientInterface interface {
	// CreateCustomer registers a billing customer and returns the provider's
	// customer id.
	CreateCustomer(ctx context.Context, name, email string) (string, error)
	// CreateCheckoutSession creates a checkout session for the given user and
	// returns the hosted checkout URL.
	CreateCheckoutSession(ctx context.Context, userID, tenantID string) (string, error)
	// Enabled reports whether the provider is configured. Callers skip
	// best-effort calls entirely when it is not.
	Enabled() bool
}
