// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package apierror holds the client-visible error taxonomy. Services wrap
// these sentinels; handlers map them to HTTP statuses without inspecting
// anything deeper.
package apierror

import (
	"errors"
	"net/http"
)

var (
	// ErrUnauthenticated covers missing, malformed, invalid-signature and
	// expired tokens as well as credential mismatches. Deliberately uniform:
	// the response never reveals which part of the credential was wrong.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden means the caller is authenticated but its role is not in
	// the allowed set. Kept distinct from ErrUnauthenticated (403 vs 401) so
	// legitimate clients can tell a stale token from a missing permission.
	ErrForbidden = errors.New("forbidden")

	ErrConflict    = errors.New("already exists")
	ErrRateLimited = errors.New("too many requests")
	ErrValidation  = errors.New("invalid input")

	// ErrUpstream surfaces a provider failure in a flow that requires the
	// provider to succeed (checkout session creation). Best-effort provider
	// calls never produce it; they are logged and suppressed.
	ErrUpstream = errors.New("upstream provider error")
)

// Status maps a service error to an HTTP status code.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Code returns the taxonomy identifier used in error response bodies.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return "unauthenticated"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrUpstream):
		return "upstream"
	default:
		return "internal"
	}
}
