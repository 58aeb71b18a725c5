package handler

import (
	"log/slog"
	"net/http"

	"flexdeck/internal/domain/services"
	"flexdeck/internal/httputil"
)

// ShareHandler handles share token HTTP requests, both the authed
// editor side and the public token resolver.
type ShareHandler struct {
	publishService services.PublishService
	logger         *slog.Logger
}

// NewShareHandler creates a new share handler
func NewShareHandler(publishService services.PublishService, logger *slog.Logger) *ShareHandler {
	return &ShareHandler{
		publishService: publishService,
		logger:         logger,
	}
}

// GetActiveShare returns the document's active share token
// GET /api/docs/{id}/active-share
func (h *ShareHandler) GetActiveShare(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Document ID is required")
		return
	}

	share, err := h.publishService.GetActiveShare(r.Context(), id, userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, share)
}

// GetShareMessages compiles the draft into the ordered message slice
// the in-app share picker sends
// GET /api/docs/{id}/share-messages
func (h *ShareHandler) GetShareMessages(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Document ID is required")
		return
	}

	messages, err := h.publishService.ShareMessages(r.Context(), id, userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"messages": messages,
	})
}

// GetActiveToken resolves a document id to its active share token.
// Public, no auth: the share viewer calls this when opened with a
// document id during preview instead of a minted token.
// GET /api/docs/{id}/active-token
func (h *ShareHandler) GetActiveToken(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Document ID is required")
		return
	}

	token, err := h.publishService.ResolveActiveToken(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]string{"token": token})
}

// ResolveShare resolves a share token to its published snapshot.
// Public, no auth: the token itself is the capability.
// GET /api/share/{token}
func (h *ShareHandler) ResolveShare(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	if token == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Share token is required")
		return
	}

	resolution, err := h.publishService.ResolveToken(r.Context(), token)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, resolution)
}
