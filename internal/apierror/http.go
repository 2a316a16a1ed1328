// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package apierror

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// WriteError writes the JSON error body for err. Internal errors are not
// echoed to the client; callers are expected to have logged them already.
func WriteError(w http.ResponseWriter, err error) {
	status := Status(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: message,
		Code:  Code(err),
	})
}

// Validation wraps a message as a client-visible validation failure.
func Validation(message string) error {
	return fmt.Errorf("%w: %s", ErrValidation, message)
}
