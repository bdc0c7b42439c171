// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-finance-keeper/internal/utils"
)

// notFound replaces chi's plain-text 404 with the JSON error body used by
// every other response.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, "route not found", http.StatusNotFound)
}

// methodNotAllowed is the JSON counterpart of chi's default 405 handler.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, "method not allowed", http.StatusMethodNotAllowed)
}
