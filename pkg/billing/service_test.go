// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/tenant-auth-service/internal/apierror"
	"github.com/canonical/tenant-auth-service/internal/logging"
	"github.com/canonical/tenant-auth-service/internal/monitoring"
	"github.com/canonical/tenant-auth-service/internal/tracing"
)

//go:generate mockgen -build_flags=--mod=mod -package billing -destination ./mock_billing.go -source=./interfaces.go

const (
	testUserID   = "6b9e60a6-4f86-4c6b-94b0-6b0c9fd2a77a"
	testTenantID = "e2b2f0a5-42cb-4f5e-a44f-2d0a6c8f3a11"
)

func newTestBillingService(t *testing.T, secret []byte) (*Service, *MockPaymentProviderInterface) {
	ctrl := gomock.NewController(t)
	payments := NewMockPaymentProviderInterface(ctrl)

	s := NewService(payments, secret, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	return s, payments
}

func sign(secret, payload []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestCreateCheckoutSession(t *testing.T) {
	s, payments := newTestBillingService(t, nil)

	payments.EXPECT().Enabled().Return(true)
	payments.EXPECT().CreateCheckoutSession(gomock.Any(), testUserID, testTenantID).Return("https://pay.example/cs_123", nil)

	url, err := s.CreateCheckoutSession(context.Background(), testUserID, testTenantID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if url != "https://pay.example/cs_123" {
		t.Fatalf("unexpected url %q", url)
	}
}

func TestCreateCheckoutSessionProviderDown(t *testing.T) {
	s, payments := newTestBillingService(t, nil)

	payments.EXPECT().Enabled().Return(true)
	payments.EXPECT().CreateCheckoutSession(gomock.Any(), testUserID, testTenantID).Return("", errors.New("timeout"))

	_, err := s.CreateCheckoutSession(context.Background(), testUserID, testTenantID)
	if !errors.Is(err, apierror.ErrUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}

func TestCreateCheckoutSessionNotConfigured(t *testing.T) {
	s, payments := newTestBillingService(t, nil)

	payments.EXPECT().Enabled().Return(false)

	_, err := s.CreateCheckoutSession(context.Background(), testUserID, testTenantID)
	if !errors.Is(err, apierror.ErrUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}

func TestVerifySignature(t *testing.T) {
	secret := []byte("whsec_test")
	s, _ := newTestBillingService(t, secret)

	payload := []byte(`{"type":"payment_intent.succeeded","data":{}}`)

	if !s.VerifySignature(payload, sign(secret, payload)) {
		t.Fatal("expected valid signature to verify")
	}

	if s.VerifySignature(payload, sign([]byte("other-secret"), payload)) {
		t.Fatal("expected signature from wrong secret to fail")
	}

	if s.VerifySignature(payload, "") {
		t.Fatal("expected empty signature to fail")
	}

	if s.VerifySignature([]byte(`tampered`), sign(secret, payload)) {
		t.Fatal("expected tampered payload to fail")
	}
}

func TestSignatureRequired(t *testing.T) {
	s, _ := newTestBillingService(t, []byte("whsec_test"))
	if !s.SignatureRequired() {
		t.Fatal("expected signature to be required with a secret configured")
	}

	s, _ = newTestBillingService(t, nil)
	if s.SignatureRequired() {
		t.Fatal("expected signature not to be required without a secret")
	}
}

func TestHandleEvent(t *testing.T) {
	s, _ := newTestBillingService(t, nil)

	for _, eventType := range []string{"payment_intent.succeeded", "payment_intent.payment_failed", "customer.created", ""} {
		if err := s.HandleEvent(context.Background(), eventType, []byte(`{}`)); err != nil {
			t.Fatalf("expected event %q to be acknowledged, got %v", eventType, err)
		}
	}
}
