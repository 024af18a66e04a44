package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"locallibrary/internal/domains/genre/model"
	"locallibrary/internal/shared/apperror"
	"locallibrary/pkg/cache"
	"locallibrary/pkg/database"
)

// Cache key layout
const (
	genreCacheKeyPrefix = "genre:"
	genreListKeyPrefix  = "genres:list:"
	genreListAllKey     = genreListKeyPrefix + "all"
)

type postgresRepository struct {
	pool     *pgxpool.Pool
	cache    cache.Cache
	cacheTTL time.Duration
}

// NewPostgresRepository wires the genre store to the pool and the cache.
func NewPostgresRepository(pool *pgxpool.Pool, c cache.Cache, cacheTTL time.Duration) RepositoryInterface {
	return &postgresRepository{
		pool:     pool,
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]model.Genre, error) {
	var genres []model.Genre
	if r.fromCache(ctx, genreListAllKey, &genres) {
		return genres, nil
	}

	rows, err := r.pool.Query(ctx, `SELECT id, name FROM genres ORDER BY name ASC`)
	if err != nil {
		return nil, apperror.Persistence("list genres", err)
	}
	defer rows.Close()

	genres = make([]model.Genre, 0)
	for rows.Next() {
		var g model.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, apperror.Persistence("scan genre", err)
		}
		genres = append(genres, g)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Persistence("list genres", err)
	}

	r.toCache(ctx, genreListAllKey, genres)
	return genres, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Genre, error) {
	cacheKey := genreCacheKeyPrefix + id.String()

	var g model.Genre
	if r.fromCache(ctx, cacheKey, &g) {
		return &g, nil
	}

	err := r.pool.QueryRow(ctx, `SELECT id, name FROM genres WHERE id = $1`, id).Scan(&g.ID, &g.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrGenreNotFound
		}
		return nil, apperror.Persistence("get genre", err)
	}

	r.toCache(ctx, cacheKey, g)
	return &g, nil
}

func (r *postgresRepository) FindByName(ctx context.Context, name string) (*model.Genre, error) {
	var g model.Genre
	err := r.pool.QueryRow(ctx,
		`SELECT id, name FROM genres WHERE name = $1 ORDER BY id LIMIT 1`, name,
	).Scan(&g.ID, &g.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrGenreNotFound
		}
		return nil, apperror.Persistence("find genre by name", err)
	}
	return &g, nil
}

func (r *postgresRepository) Create(ctx context.Context, g *model.Genre) (*model.Genre, error) {
	var created model.Genre
	err := r.pool.QueryRow(ctx,
		`INSERT INTO genres (name) VALUES ($1) RETURNING id, name`, g.Name,
	).Scan(&created.ID, &created.Name)
	if err != nil {
		return nil, apperror.Persistence("create genre", err)
	}

	r.invalidateListCache(ctx)
	return &created, nil
}

func (r *postgresRepository) Update(ctx context.Context, g *model.Genre) (*model.Genre, error) {
	var updated model.Genre
	err := r.pool.QueryRow(ctx, `
        UPDATE genres
        SET name = $2, updated_at = NOW()
        WHERE id = $1
        RETURNING id, name
    `, g.ID, g.Name).Scan(&updated.ID, &updated.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrGenreNotFound
		}
		return nil, apperror.Persistence("update genre", err)
	}

	r.invalidate(ctx, g.ID)
	return &updated, nil
}

// DeleteIfUnreferenced locks the genre row, counts its books and deletes
// only when there are none, all in one transaction. Inserting a book takes
// a KEY SHARE lock on the genre through the foreign key, so it cannot slip
// in between the count and the delete.
func (r *postgresRepository) DeleteIfUnreferenced(ctx context.Context, id uuid.UUID) error {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var locked uuid.UUID
		err := tx.QueryRow(ctx, `SELECT id FROM genres WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return model.ErrGenreNotFound
			}
			return apperror.Persistence("lock genre", err)
		}

		var books int
		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM books WHERE genre_id = $1`, id).Scan(&books); err != nil {
			return apperror.Persistence("count genre books", err)
		}
		if books > 0 {
			return model.ErrGenreHasBooks
		}

		if _, err := tx.Exec(ctx, `DELETE FROM genres WHERE id = $1`, id); err != nil {
			return apperror.Persistence("delete genre", err)
		}
		return nil
	})
	if err != nil {
		if apperror.KindOf(err) == apperror.KindUnknown {
			return apperror.Persistence("delete genre", err)
		}
		return err
	}

	r.invalidate(ctx, id)
	return nil
}

func (r *postgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM genres`).Scan(&n); err != nil {
		return 0, apperror.Persistence("count genres", err)
	}
	return n, nil
}

// fromCache reports a hit. Cache failures are logged and treated as misses.
func (r *postgresRepository) fromCache(ctx context.Context, key string, dest interface{}) bool {
	found, err := r.cache.Get(ctx, key, dest)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("[GENRE] cache read failed")
		return false
	}
	return found
}

func (r *postgresRepository) toCache(ctx context.Context, key string, value interface{}) {
	if err := r.cache.Set(ctx, key, value, r.cacheTTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("[GENRE] cache write failed")
	}
}

func (r *postgresRepository) invalidate(ctx context.Context, id uuid.UUID) {
	if err := r.cache.Delete(ctx, genreCacheKeyPrefix+id.String()); err != nil {
		log.Warn().Err(err).Msg("[GENRE] cache delete failed")
	}
	r.invalidateListCache(ctx)
}

func (r *postgresRepository) invalidateListCache(ctx context.Context) {
	if err := r.cache.DeletePattern(ctx, genreListKeyPrefix+"*"); err != nil {
		log.Warn().Err(err).Msg("[GENRE] list cache invalidation failed")
	}
}
