package database

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrate applies every pending embedded migration and returns the names of
// the ones it applied. golang-migrate holds a Postgres advisory lock while it
// runs, so concurrent callers apply each migration once.
func (db *PostgresDB) Migrate(ctx context.Context) ([]string, error) {
	m, err := db.newMigrator()
	if err != nil {
		return nil, err
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			log.Warn().AnErr("source", srcErr).AnErr("database", dbErr).Msg("[DATABASE] Failed to close migrator")
		}
	}()

	before, err := migrationVersion(m)
	if err != nil {
		return nil, err
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			m.GracefulStop <- true
		case <-done:
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	after, err := migrationVersion(m)
	if err != nil {
		return nil, err
	}

	applied, err := migrationsBetween(before, after)
	if err != nil {
		return nil, err
	}
	for _, name := range applied {
		log.Info().Str("migration", name).Msg("[DATABASE] Migration applied")
	}
	return applied, nil
}

func (db *PostgresDB) newMigrator() (*migrate.Migrate, error) {
	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, db.connectionURL("pgx5"))
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return m, nil
}

// migrationVersion is 0 before the first migration.
func migrationVersion(m *migrate.Migrate) (uint, error) {
	version, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		return 0, nil
	case err != nil:
		return 0, fmt.Errorf("failed to read migration version: %w", err)
	case dirty:
		return 0, fmt.Errorf("database is dirty at migration %d, fix it and force the version", version)
	}
	return version, nil
}

// migrationsBetween lists the up migrations with before < version <= after.
func migrationsBetween(before, after uint) ([]string, error) {
	names, err := fs.Glob(migrationFiles, "migrations/*.up.sql")
	if err != nil {
		return nil, fmt.Errorf("failed to list migrations: %w", err)
	}
	sort.Strings(names)

	var applied []string
	for _, name := range names {
		base := path.Base(name)
		prefix, _, _ := strings.Cut(base, "_")
		version, err := strconv.ParseUint(prefix, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("migration %s has no numeric version: %w", base, err)
		}
		if uint(version) > before && uint(version) <= after {
			applied = append(applied, base)
		}
	}
	return applied, nil
}
