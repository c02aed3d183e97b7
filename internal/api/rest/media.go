package rest

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	apiErrors "github.com/dtroode/garden-server/internal/apierrors"
	"github.com/dtroode/garden-server/internal/logger"
)

// ImageService reads stored profile media.
type ImageService interface {
	GetImage(ctx context.Context, key string) (io.ReadCloser, error)
}

// MediaHandler streams profile and cover images by storage key.
type MediaHandler struct {
	images ImageService
	logger *logger.Logger
}

// NewMediaHandler creates a MediaHandler.
func NewMediaHandler(images ImageService, logger *logger.Logger) *MediaHandler {
	return &MediaHandler{images: images, logger: logger}
}

// Get handles GET /media/*.
func (h *MediaHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "*")
	if !strings.HasPrefix(key, "users/") || strings.Contains(key, "..") {
		writeError(w, r, h.logger, apiErrors.ErrImageNotFound)
		return
	}

	body, err := h.images.GetImage(r.Context(), key)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	defer body.Close()

	br := bufio.NewReader(body)
	head, _ := br.Peek(512)
	w.Header().Set("Content-Type", http.DetectContentType(head))
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, br); err != nil {
		h.logger.Warn("HTTP media stream interrupted",
			"key", key,
			"error", err)
	}
}
