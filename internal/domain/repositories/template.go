package repositories

import (
	"context"

	"flexdeck/internal/domain/models"
)

// TemplateRepository defines data access operations for document
// templates. Public templates (owner NULL) are readable by everyone;
// user templates only by their owner.
type TemplateRepository interface {
	// Create inserts a new template
	Create(ctx context.Context, tpl *models.Template) error

	// GetByID retrieves a template the user may read
	GetByID(ctx context.Context, id, userID string) (*models.Template, error)

	// ListVisible lists public templates plus the user's own
	ListVisible(ctx context.Context, userID string) ([]models.Template, error)

	// Delete deletes a template the user owns
	Delete(ctx context.Context, id, ownerID string) error
}
