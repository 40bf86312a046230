package migrations

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"fmt"
)

// migration is a single versioned schema change
type migration struct {
	Version string
	SQL     string
}

// migrationSet lists all schema migrations in order
var migrationSet = []migration{
	{
		Version: "001_create_bayes_analyses",
		SQL: `
			CREATE TABLE IF NOT EXISTS bayes_analyses (
				id TEXT PRIMARY KEY,
				label TEXT NOT NULL DEFAULT '',
				family TEXT NOT NULL,
				bayes_factor DOUBLE PRECISION NOT NULL,
				favored TEXT NOT NULL,
				strength TEXT NOT NULL,
				payload JSONB NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
	},
	{
		Version: "002_index_bayes_analyses_created_at",
		SQL:     `CREATE INDEX IF NOT EXISTS idx_bayes_analyses_created_at ON bayes_analyses (created_at DESC)`,
	},
}

// Migrator handles database schema migrations
type Migrator struct {
	db *sql.DB
}

// NewMigrator creates a new migrator
func NewMigrator(db *sql.DB) *Migrator {
	return &Migrator{db: db}
}

// Up executes all pending migrations
func (m *Migrator) Up(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			checksum TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := m.appliedMigrations(ctx)
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}

	for _, mig := range migrationSet {
		if applied[mig.Version] {
			continue
		}
		if err := m.apply(ctx, mig); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", mig.Version, err)
		}
	}

	return nil
}

func (m *Migrator) appliedMigrations(ctx context.Context) (map[string]bool, error) {
	rows, err := m.db.QueryContext(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var version string
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

func (m *Migrator) apply(ctx context.Context, mig migration) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, mig.SQL); err != nil {
		return err
	}

	checksum := fmt.Sprintf("%x", sha256.Sum256([]byte(mig.SQL)))
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version, checksum) VALUES ($1, $2)`,
		mig.Version, checksum); err != nil {
		return err
	}

	return tx.Commit()
}
