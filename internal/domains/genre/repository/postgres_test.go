package repository_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locallibrary/internal/domains/genre/model"
	"locallibrary/internal/domains/genre/repository"
	"locallibrary/internal/testutil/pgtest"
	"locallibrary/pkg/cache"
)

func setup(t *testing.T) (repository.RepositoryInterface, *pgxpool.Pool) {
	pool := pgtest.Connect(t)
	return repository.NewPostgresRepository(pool, cache.NewNoop(), time.Minute), pool
}

func TestDeleteIfUnreferenced_KeepsGenreWithBooks(t *testing.T) {
	repo, pool := setup(t)
	ctx := context.Background()

	genreID := pgtest.GivenGenre(t, pool, pgtest.UniqueName("Fantasy"))
	authorID := pgtest.GivenAuthor(t, pool, "Patrick", pgtest.UniqueName("Rothfuss"))
	pgtest.GivenBook(t, pool, authorID, genreID)

	err := repo.DeleteIfUnreferenced(ctx, genreID)
	assert.ErrorIs(t, err, model.ErrGenreHasBooks)

	g, err := repo.FindByID(ctx, genreID)
	require.NoError(t, err)
	assert.Equal(t, genreID, g.ID)
}

func TestDeleteIfUnreferenced_RemovesUnusedGenre(t *testing.T) {
	repo, pool := setup(t)
	ctx := context.Background()

	genreID := pgtest.GivenGenre(t, pool, pgtest.UniqueName("Poetry"))

	require.NoError(t, repo.DeleteIfUnreferenced(ctx, genreID))

	_, err := repo.FindByID(ctx, genreID)
	assert.ErrorIs(t, err, model.ErrGenreNotFound)

	err = repo.DeleteIfUnreferenced(ctx, genreID)
	assert.ErrorIs(t, err, model.ErrGenreNotFound)
}

func TestFindByName_IsExactMatch(t *testing.T) {
	repo, pool := setup(t)
	ctx := context.Background()

	name := pgtest.UniqueName("Mystery")
	genreID := pgtest.GivenGenre(t, pool, name)

	g, err := repo.FindByName(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, genreID, g.ID)

	_, err = repo.FindByName(ctx, strings.ToLower(name))
	assert.ErrorIs(t, err, model.ErrGenreNotFound)

	_, err = repo.FindByName(ctx, name+" ")
	assert.ErrorIs(t, err, model.ErrGenreNotFound)
}

func TestUpdate_KeepsID(t *testing.T) {
	repo, pool := setup(t)
	ctx := context.Background()

	genreID := pgtest.GivenGenre(t, pool, pgtest.UniqueName("Horror"))
	renamed := pgtest.UniqueName("Gothic Horror")

	updated, err := repo.Update(ctx, &model.Genre{ID: genreID, Name: renamed})
	require.NoError(t, err)
	assert.Equal(t, genreID, updated.ID)
	assert.Equal(t, renamed, updated.Name)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Positive(t, n)

	g, err := repo.FindByName(ctx, renamed)
	require.NoError(t, err)
	assert.Equal(t, genreID, g.ID)
}
