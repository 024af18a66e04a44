package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"locallibrary/internal/domains/author/model"
	"locallibrary/internal/shared/apperror"
	"locallibrary/pkg/cache"
	"locallibrary/pkg/database"
)

// Cache key layout
const (
	authorCacheKeyPrefix = "author:"
	authorListKeyPrefix  = "authors:list:"
	authorListAllKey     = authorListKeyPrefix + "all"
)

const authorColumns = `id, first_name, family_name, date_of_birth, date_of_death`

type postgresRepository struct {
	pool     *pgxpool.Pool
	cache    cache.Cache
	cacheTTL time.Duration
}

// NewPostgresRepository wires the author store to the pool and the cache.
func NewPostgresRepository(pool *pgxpool.Pool, c cache.Cache, cacheTTL time.Duration) RepositoryInterface {
	return &postgresRepository{
		pool:     pool,
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

func scanAuthor(row pgx.Row, a *model.Author) error {
	return row.Scan(&a.ID, &a.FirstName, &a.FamilyName, &a.DateOfBirth, &a.DateOfDeath)
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]model.Author, error) {
	var authors []model.Author
	if r.fromCache(ctx, authorListAllKey, &authors) {
		return authors, nil
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+authorColumns+` FROM authors ORDER BY family_name ASC, first_name ASC`)
	if err != nil {
		return nil, apperror.Persistence("list authors", err)
	}
	defer rows.Close()

	authors = make([]model.Author, 0)
	for rows.Next() {
		var a model.Author
		if err := scanAuthor(rows, &a); err != nil {
			return nil, apperror.Persistence("scan author", err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Persistence("list authors", err)
	}

	r.toCache(ctx, authorListAllKey, authors)
	return authors, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	cacheKey := authorCacheKeyPrefix + id.String()

	var a model.Author
	if r.fromCache(ctx, cacheKey, &a) {
		return &a, nil
	}

	err := scanAuthor(r.pool.QueryRow(ctx, `SELECT `+authorColumns+` FROM authors WHERE id = $1`, id), &a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, apperror.Persistence("get author", err)
	}

	r.toCache(ctx, cacheKey, a)
	return &a, nil
}

func (r *postgresRepository) FindByName(ctx context.Context, firstName, familyName string) (*model.Author, error) {
	var a model.Author
	err := scanAuthor(r.pool.QueryRow(ctx, `
        SELECT `+authorColumns+`
        FROM authors
        WHERE first_name = $1 AND family_name = $2
        ORDER BY id
        LIMIT 1
    `, firstName, familyName), &a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, apperror.Persistence("find author by name", err)
	}
	return &a, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	var created model.Author
	err := scanAuthor(r.pool.QueryRow(ctx, `
        INSERT INTO authors (first_name, family_name, date_of_birth, date_of_death)
        VALUES ($1, $2, $3, $4)
        RETURNING `+authorColumns,
		a.FirstName, a.FamilyName, a.DateOfBirth, a.DateOfDeath,
	), &created)
	if err != nil {
		return nil, apperror.Persistence("create author", err)
	}

	r.invalidateListCache(ctx)
	return &created, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *model.Author) (*model.Author, error) {
	var updated model.Author
	err := scanAuthor(r.pool.QueryRow(ctx, `
        UPDATE authors
        SET first_name = $2, family_name = $3, date_of_birth = $4, date_of_death = $5, updated_at = NOW()
        WHERE id = $1
        RETURNING `+authorColumns,
		a.ID, a.FirstName, a.FamilyName, a.DateOfBirth, a.DateOfDeath,
	), &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, apperror.Persistence("update author", err)
	}

	r.invalidate(ctx, a.ID)
	return &updated, nil
}

// DeleteIfUnreferenced locks the author row, counts its books and deletes
// only when there are none, all in one transaction.
func (r *postgresRepository) DeleteIfUnreferenced(ctx context.Context, id uuid.UUID) error {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var locked uuid.UUID
		err := tx.QueryRow(ctx, `SELECT id FROM authors WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return model.ErrAuthorNotFound
			}
			return apperror.Persistence("lock author", err)
		}

		var books int
		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM books WHERE author_id = $1`, id).Scan(&books); err != nil {
			return apperror.Persistence("count author books", err)
		}
		if books > 0 {
			return model.ErrAuthorHasBooks
		}

		if _, err := tx.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id); err != nil {
			return apperror.Persistence("delete author", err)
		}
		return nil
	})
	if err != nil {
		if apperror.KindOf(err) == apperror.KindUnknown {
			return apperror.Persistence("delete author", err)
		}
		return err
	}

	r.invalidate(ctx, id)
	return nil
}

func (r *postgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM authors`).Scan(&n); err != nil {
		return 0, apperror.Persistence("count authors", err)
	}
	return n, nil
}

// fromCache reports a hit. Cache failures are logged and treated as misses.
func (r *postgresRepository) fromCache(ctx context.Context, key string, dest interface{}) bool {
	found, err := r.cache.Get(ctx, key, dest)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("[AUTHOR] cache read failed")
		return false
	}
	return found
}

func (r *postgresRepository) toCache(ctx context.Context, key string, value interface{}) {
	if err := r.cache.Set(ctx, key, value, r.cacheTTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("[AUTHOR] cache write failed")
	}
}

func (r *postgresRepository) invalidate(ctx context.Context, id uuid.UUID) {
	if err := r.cache.Delete(ctx, authorCacheKeyPrefix+id.String()); err != nil {
		log.Warn().Err(err).Msg("[AUTHOR] cache delete failed")
	}
	r.invalidateListCache(ctx)
}

func (r *postgresRepository) invalidateListCache(ctx context.Context) {
	if err := r.cache.DeletePattern(ctx, authorListKeyPrefix+"*"); err != nil {
		log.Warn().Err(err).Msg("[AUTHOR] list cache invalidation failed")
	}
}
