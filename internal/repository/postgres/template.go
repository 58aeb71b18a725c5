package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"flexdeck/internal/domain"
	"flexdeck/internal/domain/models"
	"flexdeck/internal/domain/repositories"
)

// PostgresTemplateRepository implements the TemplateRepository interface
type PostgresTemplateRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewTemplateRepository creates a new template repository
func NewTemplateRepository(config *RepositoryConfig) repositories.TemplateRepository {
	return &PostgresTemplateRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a new template
func (r *PostgresTemplateRepository) Create(ctx context.Context, tpl *models.Template) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (owner_id, is_public, name, description, doc_model, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
		RETURNING id, created_at, updated_at
	`, r.tables.Templates)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		tpl.OwnerID,
		tpl.IsPublic,
		tpl.Name,
		tpl.Description,
		tpl.DocModel,
	).Scan(&tpl.ID, &tpl.CreatedAt, &tpl.UpdatedAt)

	if err != nil {
		if IsPgDuplicateError(err) {
			return fmt.Errorf("template '%s' already exists: %w", tpl.Name, domain.ErrConflict)
		}
		return fmt.Errorf("create template: %w", err)
	}

	return nil
}

// GetByID retrieves a template the user may read: public, or owned
func (r *PostgresTemplateRepository) GetByID(ctx context.Context, id, userID string) (*models.Template, error) {
	query := fmt.Sprintf(`
		SELECT id, owner_id, is_public, name, description, doc_model, created_at, updated_at
		FROM %s
		WHERE id = $1 AND (is_public = true OR owner_id = $2)
	`, r.tables.Templates)

	var tpl models.Template
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id, userID).Scan(
		&tpl.ID,
		&tpl.OwnerID,
		&tpl.IsPublic,
		&tpl.Name,
		&tpl.Description,
		&tpl.DocModel,
		&tpl.CreatedAt,
		&tpl.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("template %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get template: %w", err)
	}

	return &tpl, nil
}

// ListVisible lists public templates plus the user's own, public first
func (r *PostgresTemplateRepository) ListVisible(ctx context.Context, userID string) ([]models.Template, error) {
	query := fmt.Sprintf(`
		SELECT id, owner_id, is_public, name, description, doc_model, created_at, updated_at
		FROM %s
		WHERE is_public = true OR owner_id = $1
		ORDER BY is_public DESC, name ASC
	`, r.tables.Templates)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	var templates []models.Template
	for rows.Next() {
		var tpl models.Template
		err := rows.Scan(
			&tpl.ID,
			&tpl.OwnerID,
			&tpl.IsPublic,
			&tpl.Name,
			&tpl.Description,
			&tpl.DocModel,
			&tpl.CreatedAt,
			&tpl.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		templates = append(templates, tpl)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate templates: %w", err)
	}

	return templates, nil
}

// Delete deletes a template the user owns. Public built-ins have no
// owner and cannot be deleted through this path.
func (r *PostgresTemplateRepository) Delete(ctx context.Context, id, ownerID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1 AND owner_id = $2
	`, r.tables.Templates)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("template %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
