package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"flexdeck/internal/domain/repositories"
)

// RepositoryConfig holds configuration for repository implementations
type RepositoryConfig struct {
	Pool   *pgxpool.Pool
	Tables *TableNames
	Logger *slog.Logger
}

// TableNames holds dynamically prefixed table names
type TableNames struct {
	Docs        string
	DocVersions string
	Shares      string
	Templates   string
}

// NewTableNames creates table names with the given prefix
func NewTableNames(prefix string) *TableNames {
	return &TableNames{
		Docs:        fmt.Sprintf("%sdocs", prefix),
		DocVersions: fmt.Sprintf("%sdoc_versions", prefix),
		Shares:      fmt.Sprintf("%sshares", prefix),
		Templates:   fmt.Sprintf("%stemplates", prefix),
	}
}

// CreateConnectionPool creates a new pgx connection pool.
//
// pgx defaults to prepared statements (QueryExecModeCacheStatement),
// which PgBouncer in transaction pooling mode (port 6543 on Supabase)
// does not support. When that port is detected and the user has not
// set an explicit mode in the connection string, switch to
// QueryExecModeCacheDescribe: it keeps the extended protocol (needed
// for JSONB encoding of the document model) without creating server
// side prepared statements.
//
// Dynamic table prefixes (dev_, test_, prod_) are interpolated into
// the SQL string before it reaches the server, so each environment
// gets its own statements and the interpolation is injection safe.
func CreateConnectionPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	config.MaxConns = 25
	config.MinConns = 5

	if config.ConnConfig.Port == 6543 && config.ConnConfig.DefaultQueryExecMode == pgx.QueryExecModeCacheStatement {
		config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeCacheDescribe
		slog.Debug("auto-configured cache_describe mode for PgBouncer compatibility", "port", 6543)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// GetExecutor returns the appropriate query executor for the context.
// If a transaction is present in the context, it returns the
// transaction; otherwise the pool. This lets repositories
// automatically participate in transactions when one exists.
func GetExecutor(ctx context.Context, pool *pgxpool.Pool) repositories.DBTX {
	if tx := repositories.GetTx(ctx); tx != nil {
		return tx
	}
	return pool
}
