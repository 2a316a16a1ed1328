// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package payments is a thin client for the external payment provider's
// JSON API. Provisioning treats it as best-effort; checkout does not.
package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/canonical/tenant-auth-service/internal/logging"
	"github.com/canonical/tenant-auth-service/internal/monitoring"
	"github.com/canonical/tenant-auth-service/internal/tracing"
)

var _ ClientInterface = (*Client)(nil)

type Config struct {
	APIURL string
	APIKey string
}

type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	return &Client{
		baseURL: cfg.APIURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: 10 * time.Second},
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

type customerResponse struct {
	ID string `json:"id"`
}

func (c *Client) CreateCustomer(ctx context.Context, name, email string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "payments.Client.CreateCustomer")
	defer span.End()

	var resp customerResponse
	err := c.post(ctx, "/v1/customers", map[string]string{
		"name":  name,
		"email": email,
	}, &resp)
	if err != nil {
		return "", fmt.Errorf("failed to create billing customer: %w", err)
	}

	return resp.ID, nil
}

type checkoutSessionResponse struct {
	URL string `json:"url"`
}

func (c *Client) CreateCheckoutSession(ctx context.Context, userID, tenantID string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "payments.Client.CreateCheckoutSession")
	defer span.End()

	var resp checkoutSessionResponse
	err := c.post(ctx, "/v1/checkout/sessions", map[string]interface{}{
		"mode": "payment",
		"metadata": map[string]string{
			"user_id":   userID,
			"tenant_id": tenantID,
		},
	}, &resp)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}

	return resp.URL, nil
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
