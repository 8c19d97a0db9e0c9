// Package handler answers API requests with envelopes, translates errors and
// decodes request bodies for the API handlers.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/dukerupert/wardrobe/internal/envelope"
	"github.com/dukerupert/wardrobe/internal/middleware"
)

// Respond writes an envelope with the given status, message and data.
func Respond(w http.ResponseWriter, r *http.Request, status int, message string, data map[string]any) {
	if err := envelope.Write(w, status, message, data); err != nil {
		middleware.GetLogger(r.Context()).Error("failed to encode response",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}
}

// OK answers 200 with the given message and data.
func OK(w http.ResponseWriter, r *http.Request, message string, data map[string]any) {
	Respond(w, r, http.StatusOK, message, data)
}

// Created answers 201 with the given message and data.
func Created(w http.ResponseWriter, r *http.Request, message string, data map[string]any) {
	Respond(w, r, http.StatusCreated, message, data)
}
