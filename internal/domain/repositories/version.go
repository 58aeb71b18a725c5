package repositories

import (
	"context"

	"flexdeck/internal/domain/models"
)

// VersionRepository defines data access operations for published
// version snapshots. Versions are append-only.
type VersionRepository interface {
	// Create inserts a snapshot with the next version number for its
	// document. Must run inside a transaction when paired with a share
	// swap.
	Create(ctx context.Context, version *models.Version) error

	// GetByID retrieves one snapshot, scoped to its owner
	GetByID(ctx context.Context, id, ownerID string) (*models.Version, error)

	// ListByDoc lists all snapshots for a document, newest first
	ListByDoc(ctx context.Context, docID, ownerID string) ([]models.Version, error)
}
