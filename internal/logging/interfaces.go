// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
	Security() SecurityLoggerInterface
	Sync() error
}

// SecurityLoggerInterface emits the audit events we want on a separate,
// structured channel regardless of the configured log level.
type SecurityLoggerInterface interface {
	SystemStartup()
	SystemShutdown()
	LoginSuccess(tenantID, userID string)
	LoginFailure(tenantID, email, reason string)
	TokenRevoked(jti string)
	TenantProvisioned(tenantID, name string)
}
