package services

import (
	"context"

	"flexdeck/internal/domain/models"
	"flexdeck/internal/domain/models/flexdoc"
)

// TemplateService handles the template library: built-in public
// templates plus user-saved ones.
type TemplateService interface {
	// ListTemplates lists public templates plus the user's own
	ListTemplates(ctx context.Context, userID string) ([]models.Template, error)

	// CreateTemplate saves a template from an existing draft or an
	// explicit document model
	CreateTemplate(ctx context.Context, ownerID string, req *CreateTemplateRequest) (*models.Template, error)

	// DeleteTemplate deletes a template the user owns
	DeleteTemplate(ctx context.Context, id, ownerID string) error

	// CloneTemplate copies a template's model into a fresh draft
	CloneTemplate(ctx context.Context, userID, templateID, title string) (*models.Doc, error)
}

// CreateTemplateRequest represents a template creation request.
// Exactly one of DocID or DocModel supplies the model.
type CreateTemplateRequest struct {
	Name        string            `json:"name"`
	Description *string           `json:"description,omitempty"`
	DocID       *string           `json:"doc_id,omitempty"`
	DocModel    *flexdoc.Document `json:"doc_model,omitempty"`
}
