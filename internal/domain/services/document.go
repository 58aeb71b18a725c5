package services

import (
	"context"

	"flexdeck/internal/domain/models"
	"flexdeck/internal/domain/models/flexdoc"
)

// DocumentService handles draft business logic. Every save runs the
// validator and persists the recomputed status; client-supplied status
// is ignored.
type DocumentService interface {
	// CreateDocument creates a new draft, either from an explicit
	// document model, from a stored template, or from a built-in seed
	CreateDocument(ctx context.Context, ownerID string, req *CreateDocumentRequest) (*models.Doc, error)

	// GetDocument retrieves a draft with a fresh validation report
	GetDocument(ctx context.Context, id, ownerID string) (*models.Doc, *flexdoc.Report, error)

	// UpdateDocument saves a draft. Deferred saves are debounced and
	// flushed on shutdown; the returned doc already carries the
	// recomputed status either way.
	UpdateDocument(ctx context.Context, id, ownerID string, req *UpdateDocumentRequest) (*models.Doc, *flexdoc.Report, error)

	// DeleteDocument deletes a draft and its versions and shares
	DeleteDocument(ctx context.Context, id, ownerID string) error

	// ListDocuments lists a user's drafts, newest first
	ListDocuments(ctx context.Context, ownerID string) ([]models.Doc, error)

	// Flush forces any pending deferred saves to disk
	Flush(ctx context.Context) error
}

// CreateDocumentRequest represents a draft creation request. Exactly
// one of Content, TemplateID or SeedKind drives the initial model;
// when all are empty a blank bubble is seeded.
type CreateDocumentRequest struct {
	Title      string            `json:"title"`
	Content    *flexdoc.Document `json:"content,omitempty"`
	TemplateID *string           `json:"template_id,omitempty"`
	SeedKind   string            `json:"seed_kind,omitempty"` // bubble | carousel | special
	CardCount  int               `json:"card_count,omitempty"`
}

// UpdateDocumentRequest represents a draft save
type UpdateDocumentRequest struct {
	Title   *string           `json:"title,omitempty"`
	Content *flexdoc.Document `json:"content,omitempty"`

	// Deferred requests a debounced write. Used by the editor's
	// keystroke-driven autosave; explicit saves write through.
	Deferred bool `json:"deferred,omitempty"`
}
