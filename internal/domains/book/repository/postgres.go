package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"locallibrary/internal/domains/book/model"
	"locallibrary/internal/shared/apperror"
)

// foreign_key_violation
const pgForeignKeyViolation = "23503"

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{
		pool: pool,
	}
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]model.Book, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT b.id, b.title, b.author_id, b.genre_id,
               a.family_name || ', ' || a.first_name AS author_name
        FROM books b
        JOIN authors a ON a.id = b.author_id
        ORDER BY b.title ASC
    `)
	if err != nil {
		return nil, apperror.Persistence("list books", err)
	}
	defer rows.Close()

	books := make([]model.Book, 0)
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.AuthorID, &b.GenreID, &b.AuthorName); err != nil {
			return nil, apperror.Persistence("scan book", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Persistence("list books", err)
	}
	return books, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	var b model.Book
	err := r.pool.QueryRow(ctx, `
        SELECT b.id, b.title, b.summary, b.isbn, b.author_id, b.genre_id,
               a.family_name || ', ' || a.first_name AS author_name,
               g.name AS genre_name
        FROM books b
        JOIN authors a ON a.id = b.author_id
        JOIN genres g ON g.id = b.genre_id
        WHERE b.id = $1
    `, id).Scan(
		&b.ID,
		&b.Title,
		&b.Summary,
		&b.ISBN,
		&b.AuthorID,
		&b.GenreID,
		&b.AuthorName,
		&b.GenreName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, apperror.Persistence("get book", err)
	}
	return &b, nil
}

func (r *postgresRepository) FindByGenre(ctx context.Context, genreID uuid.UUID) ([]model.Book, error) {
	return r.findWhere(ctx, "genre_id", genreID)
}

func (r *postgresRepository) FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Book, error) {
	return r.findWhere(ctx, "author_id", authorID)
}

// findWhere lists the title and summary of books whose column equals id.
// column comes from the two callers above, never from user input.
func (r *postgresRepository) findWhere(ctx context.Context, column string, id uuid.UUID) ([]model.Book, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, title, summary, author_id, genre_id
        FROM books
        WHERE `+column+` = $1
        ORDER BY title ASC
    `, id)
	if err != nil {
		return nil, apperror.Persistence("list books by "+column, err)
	}

	books, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Book, error) {
		var b model.Book
		err := row.Scan(&b.ID, &b.Title, &b.Summary, &b.AuthorID, &b.GenreID)
		return b, err
	})
	if err != nil {
		return nil, apperror.Persistence("list books by "+column, err)
	}
	return books, nil
}

func (r *postgresRepository) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	created := *b
	err := r.pool.QueryRow(ctx, `
        INSERT INTO books (title, summary, isbn, author_id, genre_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `, b.Title, b.Summary, b.ISBN, b.AuthorID, b.GenreID).Scan(&created.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return nil, model.ErrUnknownReference
		}
		return nil, apperror.Persistence("create book", err)
	}
	return &created, nil
}

func (r *postgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM books`).Scan(&n); err != nil {
		return 0, apperror.Persistence("count books", err)
	}
	return n, nil
}
