// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ LoggerInterface = (*Logger)(nil)

type Logger struct {
	*zap.SugaredLogger
	security *SecurityLogger
}

func (l *Logger) Security() SecurityLoggerInterface {
	return l.security
}

// NewLogger creates a production zap logger at the given level. Unknown level
// strings fall back to error, matching the config default.
func NewLogger(level string) *Logger {
	zapLevel, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		zapLevel = zapcore.ErrorLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}

	return &Logger{
		SugaredLogger: logger.Sugar(),
		security:      &SecurityLogger{l: logger.Named("security")},
	}
}

// SecurityLogger writes audit events at Info level with a fixed event field
// so they can be filtered downstream independently of the app log level.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "system.startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "system.shutdown"))
}

func (s *SecurityLogger) LoginSuccess(tenantID, userID string) {
	s.l.Info("login success",
		zap.String("event", "auth.login.success"),
		zap.String("tenant_id", tenantID),
		zap.String("user_id", userID),
	)
}

func (s *SecurityLogger) LoginFailure(tenantID, email, reason string) {
	// The reason is logged for operators only; clients always see a uniform
	// credential failure.
	s.l.Info("login failure",
		zap.String("event", "auth.login.failure"),
		zap.String("tenant_id", tenantID),
		zap.String("email", email),
		zap.String("reason", reason),
	)
}

func (s *SecurityLogger) TokenRevoked(jti string) {
	s.l.Info("refresh token revoked",
		zap.String("event", "auth.token.revoked"),
		zap.String("jti", jti),
	)
}

func (s *SecurityLogger) TenantProvisioned(tenantID, name string) {
	s.l.Info("tenant provisioned",
		zap.String("event", "tenant.provisioned"),
		zap.String("tenant_id", tenantID),
		zap.String("name", name),
	)
}
