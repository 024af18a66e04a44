// Package pgtest connects repository tests to a real PostgreSQL. Tests are
// skipped unless DB_HOST is set; the schema is migrated on connect.
package pgtest

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"locallibrary/internal/config"
	"locallibrary/internal/infrastructure/database"
)

func Connect(t testing.TB) *pgxpool.Pool {
	t.Helper()

	if os.Getenv("DB_HOST") == "" {
		t.Skip("DB_HOST not set, skipping PostgreSQL test")
	}

	cfg, err := config.LoadDatabaseConfig()
	require.NoError(t, err, "error in loading database config")
	cfg.MaxRetries = 1

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.NewPostgresDB(cfg)
	require.NoError(t, db.Connect(ctx), "error in connecting to test database")
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Migrate(ctx)
	require.NoError(t, err, "error in migrating test database")

	return db.Pool
}

// UniqueName suffixes base so parallel runs against one database do not collide.
func UniqueName(base string) string {
	return base + " " + uuid.NewString()[:8]
}

func GivenGenre(t testing.TB, pool *pgxpool.Pool, name string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`INSERT INTO genres (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	require.NoError(t, err, "error in arranging test genre")

	t.Cleanup(func() { deleteRow(pool, "genres", id) })
	return id
}

func GivenAuthor(t testing.TB, pool *pgxpool.Pool, firstName, familyName string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`INSERT INTO authors (first_name, family_name) VALUES ($1, $2) RETURNING id`,
		firstName, familyName).Scan(&id)
	require.NoError(t, err, "error in arranging test author")

	t.Cleanup(func() { deleteRow(pool, "authors", id) })
	return id
}

// GivenBook inserts a book referencing authorID and genreID. Its cleanup runs
// before the author's and genre's when they were arranged first.
func GivenBook(t testing.TB, pool *pgxpool.Pool, authorID, genreID uuid.UUID) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := pool.QueryRow(context.Background(), `
        INSERT INTO books (title, summary, isbn, author_id, genre_id)
        VALUES ('Test Book', 'Summary of test book', 'ISBN000000', $1, $2)
        RETURNING id
    `, authorID, genreID).Scan(&id)
	require.NoError(t, err, "error in arranging test book")

	t.Cleanup(func() { deleteRow(pool, "books", id) })
	return id
}

// deleteRow is only called with the table names above.
func deleteRow(pool *pgxpool.Pool, table string, id uuid.UUID) {
	_, _ = pool.Exec(context.Background(), `DELETE FROM `+table+` WHERE id = $1`, id)
}
