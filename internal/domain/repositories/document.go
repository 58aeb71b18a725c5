package repositories

import (
	"context"

	"flexdeck/internal/domain/models"
)

// DocRepository defines data access operations for document drafts.
// All operations are scoped to the owning user.
type DocRepository interface {
	// Create creates a new draft
	Create(ctx context.Context, doc *models.Doc) error

	// GetByID retrieves a draft by ID, scoped to its owner
	GetByID(ctx context.Context, id, ownerID string) (*models.Doc, error)

	// Update persists the document model, title and recomputed status
	Update(ctx context.Context, doc *models.Doc) error

	// Delete deletes a draft and everything hanging off it
	Delete(ctx context.Context, id, ownerID string) error

	// ListByOwner lists all drafts for a user, newest first (no content)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Doc, error)
}
