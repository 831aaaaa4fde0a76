package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

const (
	DirectionUp   = "up"
	DirectionDown = "down"

	upSuffix   = "_up.sql"
	downSuffix = "_down.sql"
)

// Migration is one versioned schema change. Files are named
// NNNN_description_up.sql / NNNN_description_down.sql.
type Migration struct {
	Version string
	Name    string
	Up      string
	Down    string
}

// IsSeed reports whether the migration only loads reference data.
func (m Migration) IsSeed() bool {
	return strings.Contains(m.Name, "seed")
}

// LoadMigrations reads the embedded migrations in ascending version order.
func LoadMigrations() ([]Migration, error) {
	return loadMigrations(migrationFS, "migrations")
}

func loadMigrations(fsys fs.FS, dir string) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}

	byVersion := map[string]*Migration{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()

		var suffix string
		switch {
		case strings.HasSuffix(name, upSuffix):
			suffix = upSuffix
		case strings.HasSuffix(name, downSuffix):
			suffix = downSuffix
		default:
			continue
		}

		base := strings.TrimSuffix(name, suffix)
		version, desc, ok := strings.Cut(base, "_")
		if !ok {
			return nil, fmt.Errorf("migration %q: missing version prefix", name)
		}

		body, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read migration %q: %w", name, err)
		}

		m, exists := byVersion[version]
		if !exists {
			m = &Migration{Version: version, Name: desc}
			byVersion[version] = m
		}
		if suffix == upSuffix {
			m.Up = string(body)
		} else {
			m.Down = string(body)
		}
	}

	migrations := make([]Migration, 0, len(byVersion))
	for _, m := range byVersion {
		if m.Up == "" {
			return nil, fmt.Errorf("migration %s_%s: missing up script", m.Version, m.Name)
		}
		migrations = append(migrations, *m)
	}
	sort.Slice(migrations, func(i, j int) bool { return migrations[i].Version < migrations[j].Version })

	return migrations, nil
}

// Migrator applies embedded migrations and records them in schema_migrations.
type Migrator struct {
	db         PgxIface
	log        *zap.Logger
	migrations []Migration
}

func NewMigrator(db PgxIface, log *zap.Logger) (*Migrator, error) {
	migrations, err := LoadMigrations()
	if err != nil {
		return nil, err
	}
	return &Migrator{
		db:         db,
		log:        log.With(zap.String("component", "migrator")),
		migrations: migrations,
	}, nil
}

func (m *Migrator) ensureTable(ctx context.Context) error {
	_, err := m.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    VARCHAR(32) PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}
	return nil
}

func (m *Migrator) applied(ctx context.Context) (map[string]bool, error) {
	rows, err := m.db.Query(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("list applied migrations: %w", err)
	}
	defer rows.Close()

	done := map[string]bool{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan migration version: %w", err)
		}
		done[v] = true
	}
	return done, rows.Err()
}

// Up applies pending migrations. steps <= 0 applies all of them.
func (m *Migrator) Up(ctx context.Context, steps int, withSeed bool) (int, error) {
	if err := m.ensureTable(ctx); err != nil {
		return 0, err
	}
	done, err := m.applied(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, mig := range m.migrations {
		if steps > 0 && count >= steps {
			break
		}
		if done[mig.Version] || (mig.IsSeed() && !withSeed) {
			continue
		}
		if err := m.run(ctx, mig, mig.Up, DirectionUp); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// Down reverts applied migrations, newest first. steps <= 0 reverts all of them.
func (m *Migrator) Down(ctx context.Context, steps int) (int, error) {
	if err := m.ensureTable(ctx); err != nil {
		return 0, err
	}
	done, err := m.applied(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for i := len(m.migrations) - 1; i >= 0; i-- {
		if steps > 0 && count >= steps {
			break
		}
		mig := m.migrations[i]
		if !done[mig.Version] {
			continue
		}
		if mig.Down == "" {
			return count, fmt.Errorf("migration %s_%s has no down script", mig.Version, mig.Name)
		}
		if err := m.run(ctx, mig, mig.Down, DirectionDown); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func (m *Migrator) run(ctx context.Context, mig Migration, script, direction string) error {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin migration %s: %w", mig.Version, err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, script); err != nil {
		m.log.Error("Migration failed",
			zap.String("version", mig.Version),
			zap.String("name", mig.Name),
			zap.String("direction", direction),
			zap.Error(err),
		)
		return fmt.Errorf("exec migration %s_%s: %w", mig.Version, mig.Name, err)
	}

	if direction == DirectionUp {
		_, err = tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, mig.Version)
	} else {
		_, err = tx.Exec(ctx, `DELETE FROM schema_migrations WHERE version = $1`, mig.Version)
	}
	if err != nil {
		return fmt.Errorf("record migration %s: %w", mig.Version, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit migration %s: %w", mig.Version, err)
	}

	m.log.Info("Migration applied",
		zap.String("version", mig.Version),
		zap.String("name", mig.Name),
		zap.String("direction", direction),
	)
	return nil
}
