package rest

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	apiErrors "github.com/dtroode/garden-server/internal/apierrors"
	"github.com/dtroode/garden-server/internal/logger"
	"github.com/dtroode/garden-server/internal/service"
)

// RecoveryService checks recovery links and resets passwords through them.
type RecoveryService interface {
	ValidateRecovery(ctx context.Context, userID uuid.UUID, token string) error
	ResetPassword(ctx context.Context, userID uuid.UUID, token string, in service.ResetPasswordInput) error
}

// RecoveryHandler serves the links mailed by password recovery.
type RecoveryHandler struct {
	recovery RecoveryService
	logger   *logger.Logger
}

// NewRecoveryHandler creates a RecoveryHandler.
func NewRecoveryHandler(recovery RecoveryService, logger *logger.Logger) *RecoveryHandler {
	return &RecoveryHandler{recovery: recovery, logger: logger}
}

type resetPasswordRequest struct {
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Routes mounts GET and POST on /{id}/{token}.
func (h *RecoveryHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/{id}/{token}", h.Validate)
	r.Post("/{id}/{token}", h.Reset)
	return r
}

// Validate handles GET /user/recovery/{id}/{token}.
func (h *RecoveryHandler) Validate(w http.ResponseWriter, r *http.Request) {
	userID, token, ok := h.link(w, r)
	if !ok {
		return
	}
	if err := h.recovery.ValidateRecovery(r.Context(), userID, token); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, messageBody{Message: "recovery link is valid"})
}

// Reset handles POST /user/recovery/{id}/{token}.
func (h *RecoveryHandler) Reset(w http.ResponseWriter, r *http.Request) {
	userID, token, ok := h.link(w, r)
	if !ok {
		return
	}

	var req resetPasswordRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&req); err != nil {
		writeError(w, r, h.logger, apiErrors.ErrValidation.WithMessage("invalid request body"))
		return
	}

	err := h.recovery.ResetPassword(r.Context(), userID, token, service.ResetPasswordInput{
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, messageBody{Message: "password has been reset"})
}

// link extracts the user id and token. A malformed id reads the same as
// any other dead link.
func (h *RecoveryHandler) link(w http.ResponseWriter, r *http.Request) (uuid.UUID, string, bool) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, apiErrors.ErrRecoveryExpired)
		return uuid.Nil, "", false
	}
	return userID, chi.URLParam(r, "token"), true
}
