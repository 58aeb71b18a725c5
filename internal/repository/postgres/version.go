package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"flexdeck/internal/domain"
	"flexdeck/internal/domain/models"
	"flexdeck/internal/domain/repositories"
)

// PostgresVersionRepository implements the VersionRepository interface
type PostgresVersionRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewVersionRepository creates a new version repository
func NewVersionRepository(config *RepositoryConfig) repositories.VersionRepository {
	return &PostgresVersionRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a snapshot with the next version number. The
// COALESCE(max)+1 subquery and the insert run as one statement, so
// numbering stays gapless and monotonic when called inside the
// publish transaction.
func (r *PostgresVersionRepository) Create(ctx context.Context, version *models.Version) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (owner_id, doc_id, version_no, flex_json, validation_report, created_at)
		VALUES (
			$1, $2,
			(SELECT COALESCE(MAX(version_no), 0) + 1 FROM %s WHERE doc_id = $2),
			$3, $4, now()
		)
		RETURNING id, version_no, created_at
	`, r.tables.DocVersions, r.tables.DocVersions)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		version.OwnerID,
		version.DocID,
		version.FlexJSON,
		version.ValidationReport,
	).Scan(&version.ID, &version.VersionNo, &version.CreatedAt)

	if err != nil {
		if IsPgDuplicateError(err) {
			// Two publishes raced on the same version_no
			return fmt.Errorf("version for doc %s: %w", version.DocID, domain.ErrConflict)
		}
		return fmt.Errorf("create version: %w", err)
	}

	return nil
}

// GetByID retrieves one snapshot, scoped to its owner
func (r *PostgresVersionRepository) GetByID(ctx context.Context, id, ownerID string) (*models.Version, error) {
	query := fmt.Sprintf(`
		SELECT id, owner_id, doc_id, version_no, flex_json, validation_report, created_at
		FROM %s
		WHERE id = $1 AND owner_id = $2
	`, r.tables.DocVersions)

	var version models.Version
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id, ownerID).Scan(
		&version.ID,
		&version.OwnerID,
		&version.DocID,
		&version.VersionNo,
		&version.FlexJSON,
		&version.ValidationReport,
		&version.CreatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("version %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get version: %w", err)
	}

	return &version, nil
}

// ListByDoc lists all snapshots for a document, newest first
func (r *PostgresVersionRepository) ListByDoc(ctx context.Context, docID, ownerID string) ([]models.Version, error) {
	query := fmt.Sprintf(`
		SELECT id, owner_id, doc_id, version_no, flex_json, validation_report, created_at
		FROM %s
		WHERE doc_id = $1 AND owner_id = $2
		ORDER BY version_no DESC
	`, r.tables.DocVersions)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, docID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}
	defer rows.Close()

	var versions []models.Version
	for rows.Next() {
		var version models.Version
		err := rows.Scan(
			&version.ID,
			&version.OwnerID,
			&version.DocID,
			&version.VersionNo,
			&version.FlexJSON,
			&version.ValidationReport,
			&version.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan version: %w", err)
		}
		versions = append(versions, version)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate versions: %w", err)
	}

	return versions, nil
}
