package postgres

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"embed"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// migration is one embedded SQL script. Version is the 14-digit timestamp
// prefix of its filename; scripts apply in version order.
type migration struct {
	Version  string
	Name     string
	SQL      string
	Checksum string
}

// Migrate applies every pending migration in order, each inside its own
// transaction, and returns how many were applied. Applied versions are
// recorded in schema_migrations together with a checksum of the script;
// re-running is a no-op, and editing a script after it has been applied is
// detected and rejected so drifted environments fail loudly instead of
// diverging silently.
func (c *Client) Migrate(ctx context.Context) (int, error) {
	return Migrate(ctx, c.sqlDB)
}

// Migrate is the plain-SQL form of (*Client).Migrate for callers that hold
// only a *sql.DB.
func Migrate(ctx context.Context, db *sql.DB) (int, error) {
	migrations, err := loadMigrations()
	if err != nil {
		return 0, err
	}

	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    varchar(14) PRIMARY KEY,
			name       varchar(255) NOT NULL,
			checksum   char(64) NOT NULL,
			applied_at timestamptz NOT NULL DEFAULT now()
		)`); err != nil {
		return 0, fmt.Errorf("op=postgres.Migrate init: %w", err)
	}

	applied, err := appliedVersions(ctx, db)
	if err != nil {
		return 0, err
	}

	n := 0
	for _, m := range migrations {
		if sum, ok := applied[m.Version]; ok {
			if sum != m.Checksum {
				return n, fmt.Errorf("op=postgres.Migrate: script %s_%s changed after being applied (checksum %s, recorded %s)",
					m.Version, m.Name, m.Checksum, sum)
			}
			continue
		}
		if err := apply(ctx, db, m); err != nil {
			return n, err
		}
		slog.Info("migration applied",
			slog.String("version", m.Version),
			slog.String("name", m.Name),
		)
		n++
	}
	return n, nil
}

func apply(ctx context.Context, db *sql.DB, m migration) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("op=postgres.Migrate begin %s: %w", m.Version, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
		return fmt.Errorf("op=postgres.Migrate apply %s_%s: %w", m.Version, m.Name, err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version, name, checksum) VALUES ($1, $2, $3)`,
		m.Version, m.Name, m.Checksum); err != nil {
		return fmt.Errorf("op=postgres.Migrate record %s: %w", m.Version, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("op=postgres.Migrate commit %s: %w", m.Version, err)
	}
	return nil
}

func appliedVersions(ctx context.Context, db *sql.DB) (map[string]string, error) {
	rows, err := db.QueryContext(ctx, `SELECT version, checksum FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("op=postgres.Migrate read applied: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]string)
	for rows.Next() {
		var version, checksum string
		if err := rows.Scan(&version, &checksum); err != nil {
			return nil, fmt.Errorf("op=postgres.Migrate scan applied: %w", err)
		}
		applied[version] = checksum
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("op=postgres.Migrate read applied: %w", err)
	}
	return applied, nil
}

// loadMigrations reads the embedded scripts and returns them sorted by
// version. Filenames must look like 20240612090000_create_users.sql.
func loadMigrations() ([]migration, error) {
	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return nil, fmt.Errorf("op=postgres.Migrate read dir: %w", err)
	}

	seen := make(map[string]string, len(entries))
	migrations := make([]migration, 0, len(entries))
	for _, e := range entries {
		m, err := parseMigrationName(e.Name())
		if err != nil {
			return nil, err
		}
		if prev, ok := seen[m.Version]; ok {
			return nil, fmt.Errorf("op=postgres.Migrate: version %s used by both %s and %s", m.Version, prev, e.Name())
		}
		seen[m.Version] = e.Name()

		raw, err := migrationsFS.ReadFile("migrations/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("op=postgres.Migrate read %s: %w", e.Name(), err)
		}
		m.SQL = string(raw)
		sum := sha256.Sum256(raw)
		m.Checksum = hex.EncodeToString(sum[:])
		migrations = append(migrations, m)
	}

	sort.Slice(migrations, func(i, j int) bool { return migrations[i].Version < migrations[j].Version })
	return migrations, nil
}

func parseMigrationName(filename string) (migration, error) {
	base, ok := strings.CutSuffix(filename, ".sql")
	if !ok {
		return migration{}, fmt.Errorf("op=postgres.Migrate: %s is not a .sql script", filename)
	}
	version, name, ok := strings.Cut(base, "_")
	if !ok || name == "" {
		return migration{}, fmt.Errorf("op=postgres.Migrate: %s missing <version>_<name> form", filename)
	}
	if len(version) != 14 {
		return migration{}, fmt.Errorf("op=postgres.Migrate: %s version %q is not a 14-digit timestamp", filename, version)
	}
	for _, r := range version {
		if r < '0' || r > '9' {
			return migration{}, fmt.Errorf("op=postgres.Migrate: %s version %q is not a 14-digit timestamp", filename, version)
		}
	}
	return migration{Version: version, Name: name}, nil
}
