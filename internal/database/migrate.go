package database

import (
	"context"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jmoiron/sqlx"

	"github.com/joanrios/insultari/schemas"
)

// Migrate applies the embedded schema migrations in lexical order. Every
// migration must be idempotent (CREATE TABLE IF NOT EXISTS and friends);
// there is no version bookkeeping beyond that.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	names, err := migrationFiles(schemas.Migrations)
	if err != nil {
		return fmt.Errorf("migrationFiles() > %w", err)
	}

	for _, name := range names {
		contents, err := fs.ReadFile(schemas.Migrations, name)
		if err != nil {
			return fmt.Errorf("fs.ReadFile(%s) > %w", name, err)
		}
		if _, err := db.ExecContext(ctx, string(contents)); err != nil {
			return fmt.Errorf("db.ExecContext(%s) > %w", name, err)
		}
	}
	return nil
}

func migrationFiles(fsys fs.FS) ([]string, error) {
	matches, err := fs.Glob(fsys, "migrations/*.sql")
	if err != nil {
		return nil, fmt.Errorf("fs.Glob(migrations) > %w", err)
	}
	sort.Strings(matches)
	return matches, nil
}
