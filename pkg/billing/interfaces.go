// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import "context"

type ServiceInterface interface {
	CreateCheckoutSession(ctx context.Context, userID, tenantID string) (string, error)
	HandleEvent(ctx context.Context, eventType string, data []byte) error
	VerifySignature(payload []byte, signature string) bool
	SignatureRequired() bool
}

type PaymentProviderInterface interface {
	CreateCheckoutSession(ctx context.Context, userID, tenantID string) (string, error)
	Enabled() bool
}
