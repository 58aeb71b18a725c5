package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"flexdeck/internal/domain"
	"flexdeck/internal/domain/models"
	"flexdeck/internal/domain/repositories"
)

// PostgresShareRepository implements the ShareRepository interface
type PostgresShareRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewShareRepository creates a new share repository
func NewShareRepository(config *RepositoryConfig) repositories.ShareRepository {
	return &PostgresShareRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a new share row
func (r *PostgresShareRepository) Create(ctx context.Context, share *models.Share) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (owner_id, doc_id, version_id, token, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, now())
		RETURNING id, created_at
	`, r.tables.Shares)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		share.OwnerID,
		share.DocID,
		share.VersionID,
		share.Token,
		share.IsActive,
	).Scan(&share.ID, &share.CreatedAt)

	if err != nil {
		if IsPgDuplicateError(err) {
			return fmt.Errorf("share token collision: %w", domain.ErrConflict)
		}
		return fmt.Errorf("create share: %w", err)
	}

	return nil
}

// DeactivateForDoc marks every share of a document inactive
func (r *PostgresShareRepository) DeactivateForDoc(ctx context.Context, docID, ownerID string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET is_active = false
		WHERE doc_id = $1 AND owner_id = $2 AND is_active = true
	`, r.tables.Shares)

	executor := GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query, docID, ownerID); err != nil {
		return fmt.Errorf("deactivate shares: %w", err)
	}

	return nil
}

// GetActiveByDoc returns the single active share for a document
func (r *PostgresShareRepository) GetActiveByDoc(ctx context.Context, docID, ownerID string) (*models.Share, error) {
	query := fmt.Sprintf(`
		SELECT id, owner_id, doc_id, version_id, token, is_active, created_at
		FROM %s
		WHERE doc_id = $1 AND owner_id = $2 AND is_active = true
	`, r.tables.Shares)

	var share models.Share
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, docID, ownerID).Scan(
		&share.ID,
		&share.OwnerID,
		&share.DocID,
		&share.VersionID,
		&share.Token,
		&share.IsActive,
		&share.CreatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("active share for doc %s: %w", docID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get active share: %w", err)
	}

	return &share, nil
}

// GetByToken resolves a token without auth. Only active shares resolve.
func (r *PostgresShareRepository) GetByToken(ctx context.Context, token string) (*models.Share, error) {
	query := fmt.Sprintf(`
		SELECT id, owner_id, doc_id, version_id, token, is_active, created_at
		FROM %s
		WHERE token = $1 AND is_active = true
	`, r.tables.Shares)

	var share models.Share
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, token).Scan(
		&share.ID,
		&share.OwnerID,
		&share.DocID,
		&share.VersionID,
		&share.Token,
		&share.IsActive,
		&share.CreatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("share token: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("resolve share token: %w", err)
	}

	return &share, nil
}

// GetActiveTokenByDoc returns the active token for a document without
// an ownership check.
func (r *PostgresShareRepository) GetActiveTokenByDoc(ctx context.Context, docID string) (string, error) {
	query := fmt.Sprintf(`
		SELECT token
		FROM %s
		WHERE doc_id = $1 AND is_active = true
	`, r.tables.Shares)

	var token string
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, docID).Scan(&token)

	if err != nil {
		if IsPgNoRowsError(err) {
			return "", fmt.Errorf("active token for doc %s: %w", docID, domain.ErrNotFound)
		}
		return "", fmt.Errorf("get active token: %w", err)
	}

	return token, nil
}
