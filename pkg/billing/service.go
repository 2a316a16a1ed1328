// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package billing exposes checkout session creation and receives the
// payment provider's webhook events.
package billing

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/canonical/tenant-auth-service/internal/apierror"
	"github.com/canonical/tenant-auth-service/internal/logging"
	"github.com/canonical/tenant-auth-service/internal/monitoring"
	"github.com/canonical/tenant-auth-service/internal/tracing"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	payments      PaymentProviderInterface
	webhookSecret []byte

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(payments PaymentProviderInterface, webhookSecret []byte, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.payments = payments
	s.webhookSecret = webhookSecret

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

// CreateCheckoutSession requires the provider, there is no meaningful
// degraded behavior for checkout.
func (s *Service) CreateCheckoutSession(ctx context.Context, userID, tenantID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "billing.Service.CreateCheckoutSession")
	defer span.End()

	if !s.payments.Enabled() {
		return "", fmt.Errorf("%w: payment provider not configured", apierror.ErrUpstream)
	}

	url, err := s.payments.CreateCheckoutSession(ctx, userID, tenantID)
	if err != nil {
		s.logger.Errorf("checkout session creation failed: %v", err)
		return "", fmt.Errorf("%w: %v", apierror.ErrUpstream, err)
	}

	return url, nil
}

// HandleEvent processes a verified webhook event. Unrecognized event
// types are acknowledged and ignored so the provider does not retry them.
func (s *Service) HandleEvent(ctx context.Context, eventType string, data []byte) error {
	_, span := s.tracer.Start(ctx, "billing.Service.HandleEvent")
	defer span.End()

	switch eventType {
	case "payment_intent.succeeded":
		s.logger.Infof("payment succeeded: %s", string(data))
	case "payment_intent.payment_failed":
		s.logger.Warnf("payment failed: %s", string(data))
	default:
		s.logger.Debugf("ignoring webhook event type %q", eventType)
	}

	return nil
}

// VerifySignature checks the hex encoded HMAC-SHA256 of the raw payload.
func (s *Service) VerifySignature(payload []byte, signature string) bool {
	mac := hmac.New(sha256.New, s.webhookSecret)
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}

// SignatureRequired reports whether a webhook secret is configured. With
// no secret the webhook accepts events unverified, which is only meant
// for local development.
func (s *Service) SignatureRequired() bool {
	return len(s.webhookSecret) > 0
}
