package main

import (
	"context"
	"flag"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"flexdeck/internal/config"
	"flexdeck/internal/repository/postgres"
	"flexdeck/internal/templates"
)

func main() {
	dropTables := flag.Bool("drop-tables", false, "Drop all tables before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't seed templates")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && *dropTables {
		log.Fatalf("🚫 BLOCKED: Cannot run --drop-tables in production environment")
	}

	log.Printf("🌱 Seeding database (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.SupabaseDBURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)

	if *dropTables {
		log.Println("🗑️  Dropping all tables...")
		if err := dropAllTables(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		log.Println("✅ Tables dropped")
	}

	log.Println("📋 Ensuring database schema is up to date...")
	if err := runSchema(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to run schema: %v", err)
	}
	log.Println("✅ Schema ready")

	if *schemaOnly {
		log.Println("✅ Schema setup complete (schema-only mode)")
		return
	}

	if err := seedPublicTemplates(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to seed templates: %v", err)
	}

	log.Println("✅ Seeding complete")
}

func runSchema(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
	// Enable UUID extension
	if _, err := pool.Exec(ctx, `CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`); err != nil {
		return err
	}

	// Create docs table
	createDocs := `
		CREATE TABLE IF NOT EXISTS ` + tables.Docs + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			owner_id UUID NOT NULL,
			type TEXT NOT NULL,
			title VARCHAR(255) NOT NULL,
			content JSONB NOT NULL,
			status TEXT NOT NULL,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createDocs); err != nil {
		return err
	}
	if _, err := pool.Exec(ctx, `CREATE INDEX IF NOT EXISTS idx_`+tables.Docs+`_owner ON `+tables.Docs+` (owner_id, updated_at DESC)`); err != nil {
		return err
	}

	// Create doc_versions table. The unique constraint backs the
	// gapless per-document numbering.
	createVersions := `
		CREATE TABLE IF NOT EXISTS ` + tables.DocVersions + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			owner_id UUID NOT NULL,
			doc_id UUID NOT NULL REFERENCES ` + tables.Docs + `(id) ON DELETE CASCADE,
			version_no INTEGER NOT NULL,
			flex_json JSONB NOT NULL,
			validation_report JSONB NOT NULL,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			UNIQUE(doc_id, version_no)
		)
	`
	if _, err := pool.Exec(ctx, createVersions); err != nil {
		return err
	}

	// Create shares table. The partial unique index enforces at most
	// one active share per document at the schema level.
	createShares := `
		CREATE TABLE IF NOT EXISTS ` + tables.Shares + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			owner_id UUID NOT NULL,
			doc_id UUID NOT NULL REFERENCES ` + tables.Docs + `(id) ON DELETE CASCADE,
			version_id UUID NOT NULL REFERENCES ` + tables.DocVersions + `(id) ON DELETE CASCADE,
			token TEXT NOT NULL UNIQUE,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createShares); err != nil {
		return err
	}
	if _, err := pool.Exec(ctx, `CREATE UNIQUE INDEX IF NOT EXISTS idx_`+tables.Shares+`_active ON `+tables.Shares+` (doc_id) WHERE is_active`); err != nil {
		return err
	}

	// Create templates table
	createTemplates := `
		CREATE TABLE IF NOT EXISTS ` + tables.Templates + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			owner_id UUID,
			is_public BOOLEAN NOT NULL DEFAULT false,
			name VARCHAR(255) NOT NULL,
			description TEXT,
			doc_model JSONB NOT NULL,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createTemplates); err != nil {
		return err
	}
	// One public template per name, so re-seeding is idempotent
	if _, err := pool.Exec(ctx, `CREATE UNIQUE INDEX IF NOT EXISTS idx_`+tables.Templates+`_public_name ON `+tables.Templates+` (name) WHERE is_public`); err != nil {
		return err
	}

	return nil
}

func dropAllTables(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
	tableNames := []string{
		tables.Shares,
		tables.DocVersions,
		tables.Docs,
		tables.Templates,
	}

	for _, table := range tableNames {
		dropSQL := "DROP TABLE IF EXISTS " + table + " CASCADE"
		if _, err := pool.Exec(ctx, dropSQL); err != nil {
			return err
		}
		log.Printf("  ✓ Dropped %s", table)
	}

	return nil
}

// seedPublicTemplates inserts one public template per registry
// descriptor, skipping names that already exist.
func seedPublicTemplates(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
	registry, err := templates.NewRegistry()
	if err != nil {
		return err
	}

	query := `INSERT INTO ` + tables.Templates + ` (owner_id, is_public, name, description, doc_model)
		VALUES (NULL, true, $1, $2, $3)
		ON CONFLICT DO NOTHING`

	for _, desc := range registry.List() {
		model, err := registry.Seed(desc.Kind, desc.Name)
		if err != nil {
			return err
		}

		tag, err := pool.Exec(ctx, query, desc.Name, desc.Description, model)
		if err != nil {
			return err
		}
		if tag.RowsAffected() > 0 {
			log.Printf("  ✓ Seeded template %q", desc.Name)
		} else {
			log.Printf("  - Template %q already present", desc.Name)
		}
	}

	return nil
}
