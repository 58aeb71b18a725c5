package handler

import (
	"log/slog"
	"net/http"

	"flexdeck/internal/domain/services"
	"flexdeck/internal/httputil"
)

// TemplateHandler handles template library HTTP requests
type TemplateHandler struct {
	templateService services.TemplateService
	logger          *slog.Logger
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(templateService services.TemplateService, logger *slog.Logger) *TemplateHandler {
	return &TemplateHandler{
		templateService: templateService,
		logger:          logger,
	}
}

// ListTemplates lists public templates plus the user's own
// GET /api/templates
func (h *TemplateHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	templates, err := h.templateService.ListTemplates(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, templates)
}

// CreateTemplate saves a template from a draft or an explicit model
// POST /api/templates
func (h *TemplateHandler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	var req services.CreateTemplateRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tpl, err := h.templateService.CreateTemplate(r.Context(), userID, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, tpl)
}

// DeleteTemplate deletes a template the user owns
// DELETE /api/templates/{id}
func (h *TemplateHandler) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Template ID is required")
		return
	}

	if err := h.templateService.DeleteTemplate(r.Context(), id, userID); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CloneTemplate copies a template into a fresh draft
// POST /api/templates/{id}/clone
func (h *TemplateHandler) CloneTemplate(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Template ID is required")
		return
	}

	var req struct {
		Title string `json:"title"`
	}
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	doc, err := h.templateService.CloneTemplate(r.Context(), userID, id, req.Title)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, DocumentResponse{Doc: doc})
}
