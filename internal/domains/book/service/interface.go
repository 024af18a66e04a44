package service

import (
	"context"

	"github.com/google/uuid"

	authormodel "locallibrary/internal/domains/author/model"
	"locallibrary/internal/domains/book/model"
	genremodel "locallibrary/internal/domains/genre/model"
)

// ServiceInterface is what the book handlers need.
type ServiceInterface interface {
	// List returns every book sorted by title.
	List(ctx context.Context) ([]model.Book, error)

	Detail(ctx context.Context, id uuid.UUID) (*model.Book, error)

	// FormOptions loads the author and genre choices of the create form
	// concurrently.
	FormOptions(ctx context.Context) ([]authormodel.Author, []genremodel.Genre, error)

	Create(ctx context.Context, b model.Book) (*model.Book, error)

	Count(ctx context.Context) (int, error)
}

// AuthorLister and GenreLister are satisfied by the author and genre services.
type AuthorLister interface {
	List(ctx context.Context) ([]authormodel.Author, error)
}

type GenreLister interface {
	List(ctx context.Context) ([]genremodel.Genre, error)
}
