package repository

import (
	"context"

	"github.com/google/uuid"

	"locallibrary/internal/domains/book/model"
)

// RepositoryInterface is the book store. List and detail reads join the
// author and genre names.
type RepositoryInterface interface {
	// FindAll returns every book ordered by title, with AuthorName set.
	FindAll(ctx context.Context) ([]model.Book, error)

	// FindByID returns model.ErrBookNotFound when no row matches.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error)

	// FindByGenre and FindByAuthor return the title and summary of every
	// book referencing the record.
	FindByGenre(ctx context.Context, genreID uuid.UUID) ([]model.Book, error)
	FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Book, error)

	// Create returns model.ErrUnknownReference when the author or genre
	// does not exist.
	Create(ctx context.Context, b *model.Book) (*model.Book, error)

	Count(ctx context.Context) (int, error)
}
