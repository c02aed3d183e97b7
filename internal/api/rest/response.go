// Package rest serves the HTTP side of the garden server: recovery link
// landing, profile media, metrics and health.
package rest

import (
	"encoding/json"
	"net/http"

	apiErrors "github.com/dtroode/garden-server/internal/apierrors"
	"github.com/dtroode/garden-server/internal/logger"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type envelope struct {
	Data  any        `json:"data,omitempty"`
	Error *errorBody `json:"error,omitempty"`
}

type messageBody struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Data: data})
}

func writeError(w http.ResponseWriter, r *http.Request, log *logger.Logger, err error) {
	apiErr := apiErrors.From(err)
	if apiErr.Kind == apiErrors.KindInternal {
		log.Error("HTTP request failed",
			"path", r.URL.Path,
			"error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.HTTPStatus)
	_ = json.NewEncoder(w).Encode(envelope{Error: &errorBody{Code: apiErr.Code, Message: apiErr.Message}})
}
