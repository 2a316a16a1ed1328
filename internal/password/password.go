// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package password derives and verifies password hashes with bcrypt.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// MaxLength is the maximum password length in bytes. bcrypt silently
// truncates longer inputs, so we reject them up front instead.
const MaxLength = 72

var ErrPasswordTooLong = errors.New("password must be at most 72 bytes")

// Hash derives a salted bcrypt hash from the password.
func Hash(password string) (string, error) {
	if len(password) > MaxLength {
		return "", ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether the password matches the hash. It fails closed:
// malformed hashes and any other bcrypt error are a non-match, never a
// panic or an error the caller could mishandle.
func Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
