// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"
)

func TestDebugLogger(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("DEBUG")
	}()
}

func TestInvalidLevel(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("invalid")
	}()
}

func TestSecurityLoggerDoesNotPanic(t *testing.T) {
	l := NewNoopLogger()
	l.Security().SystemStartup()
	l.Security().LoginSuccess("tenant-1", "user-1")
	l.Security().LoginFailure("tenant-1", "a@b.com", "bad password")
	l.Security().TokenRevoked("jti-1")
	l.Security().TenantProvisioned("tenant-1", "Acme")
	l.Security().SystemShutdown()
}
