package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"flexdeck/internal/domain"
	"flexdeck/internal/domain/models"
	"flexdeck/internal/domain/repositories"
)

// PostgresDocRepository implements the DocRepository interface
type PostgresDocRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewDocRepository creates a new draft repository
func NewDocRepository(config *RepositoryConfig) repositories.DocRepository {
	return &PostgresDocRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create creates a new draft
func (r *PostgresDocRepository) Create(ctx context.Context, doc *models.Doc) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (owner_id, type, title, content, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
		RETURNING id, created_at, updated_at
	`, r.tables.Docs)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		doc.OwnerID,
		doc.Type,
		doc.Title,
		doc.Content,
		doc.Status,
	).Scan(&doc.ID, &doc.CreatedAt, &doc.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create doc: %w", err)
	}

	return nil
}

// GetByID retrieves a draft by ID, scoped to its owner
func (r *PostgresDocRepository) GetByID(ctx context.Context, id, ownerID string) (*models.Doc, error) {
	query := fmt.Sprintf(`
		SELECT id, owner_id, type, title, content, status, created_at, updated_at
		FROM %s
		WHERE id = $1 AND owner_id = $2
	`, r.tables.Docs)

	var doc models.Doc
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id, ownerID).Scan(
		&doc.ID,
		&doc.OwnerID,
		&doc.Type,
		&doc.Title,
		&doc.Content,
		&doc.Status,
		&doc.CreatedAt,
		&doc.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("doc %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get doc: %w", err)
	}

	return &doc, nil
}

// Update persists the document model, title and recomputed status
func (r *PostgresDocRepository) Update(ctx context.Context, doc *models.Doc) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $1, content = $2, status = $3, updated_at = now()
		WHERE id = $4 AND owner_id = $5
		RETURNING updated_at
	`, r.tables.Docs)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		doc.Title,
		doc.Content,
		doc.Status,
		doc.ID,
		doc.OwnerID,
	).Scan(&doc.UpdatedAt)

	if err != nil {
		if IsPgNoRowsError(err) {
			return fmt.Errorf("doc %s: %w", doc.ID, domain.ErrNotFound)
		}
		return fmt.Errorf("update doc: %w", err)
	}

	return nil
}

// Delete deletes a draft. Versions and shares cascade at the schema
// level.
func (r *PostgresDocRepository) Delete(ctx context.Context, id, ownerID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1 AND owner_id = $2
	`, r.tables.Docs)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete doc: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("doc %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ListByOwner lists all drafts for a user, newest first. Content is
// omitted; list views only need metadata and status.
func (r *PostgresDocRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Doc, error) {
	query := fmt.Sprintf(`
		SELECT id, owner_id, type, title, status, created_at, updated_at
		FROM %s
		WHERE owner_id = $1
		ORDER BY updated_at DESC
	`, r.tables.Docs)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list docs: %w", err)
	}
	defer rows.Close()

	var docs []models.Doc
	for rows.Next() {
		var doc models.Doc
		err := rows.Scan(
			&doc.ID,
			&doc.OwnerID,
			&doc.Type,
			&doc.Title,
			&doc.Status,
			&doc.CreatedAt,
			&doc.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan doc: %w", err)
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate docs: %w", err)
	}

	return docs, nil
}
