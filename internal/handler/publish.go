package handler

import (
	"log/slog"
	"net/http"

	"flexdeck/internal/domain/services"
	"flexdeck/internal/httputil"
)

// PublishHandler handles publish and version HTTP requests
type PublishHandler struct {
	publishService services.PublishService
	logger         *slog.Logger
}

// NewPublishHandler creates a new publish handler
func NewPublishHandler(publishService services.PublishService, logger *slog.Logger) *PublishHandler {
	return &PublishHandler{
		publishService: publishService,
		logger:         logger,
	}
}

// PublishDocument snapshots a new version and swaps the active share
// POST /api/docs/{id}/publish
// Returns 422 with the blocking issue codes when the gate refuses.
func (h *PublishHandler) PublishDocument(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Document ID is required")
		return
	}

	result, err := h.publishService.Publish(r.Context(), id, userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, result)
}

// ListVersions lists a document's published snapshots, newest first
// GET /api/docs/{id}/versions
func (h *PublishHandler) ListVersions(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Document ID is required")
		return
	}

	versions, err := h.publishService.ListVersions(r.Context(), id, userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, versions)
}

// GetVersion retrieves one published snapshot
// GET /api/versions/{id}
func (h *PublishHandler) GetVersion(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Version ID is required")
		return
	}

	version, err := h.publishService.GetVersion(r.Context(), id, userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, version)
}
