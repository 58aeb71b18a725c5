package handler

import (
	"log/slog"
	"net/http"

	"flexdeck/internal/domain/models"
	"flexdeck/internal/domain/models/flexdoc"
	"flexdeck/internal/domain/services"
	"flexdeck/internal/httputil"
)

// DocumentHandler handles draft HTTP requests
type DocumentHandler struct {
	docService services.DocumentService
	logger     *slog.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(docService services.DocumentService, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{
		docService: docService,
		logger:     logger,
	}
}

// DocumentResponse pairs a draft with its current validation report
type DocumentResponse struct {
	Doc    *models.Doc     `json:"doc"`
	Report *flexdoc.Report `json:"validation_report,omitempty"`
}

// CreateDocument creates a new draft
// POST /api/docs
func (h *DocumentHandler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	var req services.CreateDocumentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	doc, err := h.docService.CreateDocument(r.Context(), userID, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, DocumentResponse{Doc: doc})
}

// ListDocuments lists the user's drafts
// GET /api/docs
func (h *DocumentHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	docs, err := h.docService.ListDocuments(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, docs)
}

// GetDocument retrieves a draft with a fresh validation report
// GET /api/docs/{id}
func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Document ID is required")
		return
	}

	doc, report, err := h.docService.GetDocument(r.Context(), id, userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, DocumentResponse{Doc: doc, Report: report})
}

// UpdateDocument saves a draft
// PATCH /api/docs/{id}
func (h *DocumentHandler) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Document ID is required")
		return
	}

	var req services.UpdateDocumentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	doc, report, err := h.docService.UpdateDocument(r.Context(), id, userID, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, DocumentResponse{Doc: doc, Report: report})
}

// DeleteDocument deletes a draft
// DELETE /api/docs/{id}
func (h *DocumentHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Document ID is required")
		return
	}

	if err := h.docService.DeleteDocument(r.Context(), id, userID); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HealthCheck is a simple health check endpoint
// GET /health
func (h *DocumentHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
