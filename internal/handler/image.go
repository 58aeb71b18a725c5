package handler

import (
	"log/slog"
	"net/http"

	"flexdeck/internal/domain/services"
	"flexdeck/internal/httputil"
)

// ImageHandler handles image URL check HTTP requests
type ImageHandler struct {
	checker services.ImageChecker
	logger  *slog.Logger
}

// NewImageHandler creates a new image handler
func NewImageHandler(checker services.ImageChecker, logger *slog.Logger) *ImageHandler {
	return &ImageHandler{
		checker: checker,
		logger:  logger,
	}
}

// CheckImage probes an external image URL and classifies it
// POST /api/images/check
func (h *ImageHandler) CheckImage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL string `json:"url"`
	}
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.URL == "" {
		httputil.RespondError(w, http.StatusBadRequest, "url is required")
		return
	}

	result := h.checker.Check(r.Context(), req.URL)
	httputil.RespondJSON(w, http.StatusOK, result)
}
