package repositories

import (
	"context"

	"flexdeck/internal/domain/models"
)

// ShareRepository defines data access operations for share tokens.
// The invariant "at most one active share per document" is maintained
// by deactivating before inserting, inside one transaction.
type ShareRepository interface {
	// Create inserts a new share row
	Create(ctx context.Context, share *models.Share) error

	// DeactivateForDoc marks every share of a document inactive
	DeactivateForDoc(ctx context.Context, docID, ownerID string) error

	// GetActiveByDoc returns the single active share for a document,
	// or domain.ErrNotFound when the document was never published
	GetActiveByDoc(ctx context.Context, docID, ownerID string) (*models.Share, error)

	// GetByToken resolves a token without auth. Only active shares
	// resolve; revoked tokens return domain.ErrNotFound.
	GetByToken(ctx context.Context, token string) (*models.Share, error)

	// GetActiveTokenByDoc returns the active token for a document
	// without an ownership check. The anonymous share viewer uses this
	// when it is opened with a document id instead of a token.
	GetActiveTokenByDoc(ctx context.Context, docID string) (string, error)
}
