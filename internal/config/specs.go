// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	RedisAddr     string `envconfig:"redis_addr" default:"localhost:6379"`
	RedisPassword string `envconfig:"redis_password"`
	RedisDB       int    `envconfig:"redis_db" default:"0"`

	// JWTSecret signs access tokens. Read once at startup and injected into
	// the token service; never mutated afterwards.
	JWTSecret       string        `envconfig:"jwt_secret" required:"true"`
	AccessTokenTTL  time.Duration `envconfig:"access_token_ttl" default:"1h"`
	RefreshTokenTTL time.Duration `envconfig:"refresh_token_ttl" default:"168h"`

	LoginRateLimit  int64         `envconfig:"login_rate_limit" default:"10"`
	LoginRateWindow time.Duration `envconfig:"login_rate_window" default:"5m"`

	PaymentsAPIURL        string `envconfig:"payments_api_url"`
	PaymentsAPIKey        string `envconfig:"payments_api_key"`
	PaymentsWebhookSecret string `envconfig:"payments_webhook_secret"`

	MailAPIURL string `envconfig:"mail_api_url"`
	MailAPIKey string `envconfig:"mail_api_key"`
	MailFrom   string `envconfig:"mail_from" default:"noreply@example.com"`
}
