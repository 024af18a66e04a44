package service

import (
	"context"

	"github.com/google/uuid"

	bookmodel "locallibrary/internal/domains/book/model"
	"locallibrary/internal/domains/genre/model"
)

// ServiceInterface is what the genre handlers need.
type ServiceInterface interface {
	// List returns every genre sorted ascending by name.
	List(ctx context.Context) ([]model.Genre, error)

	// Detail fetches the genre and its books concurrently.
	Detail(ctx context.Context, id uuid.UUID) (*model.Genre, []bookmodel.Book, error)

	Get(ctx context.Context, id uuid.UUID) (*model.Genre, error)

	// CreateOrFind returns the existing genre with the same name, or inserts
	// g. created reports whether an insert happened.
	CreateOrFind(ctx context.Context, g model.Genre) (genre *model.Genre, created bool, err error)

	// Update replaces the genre with g.ID. Names are not deduplicated.
	Update(ctx context.Context, g model.Genre) (*model.Genre, error)

	// Delete removes the genre unless books still reference it.
	Delete(ctx context.Context, id uuid.UUID) error

	Count(ctx context.Context) (int, error)
}

// BookFinder is the part of the book store the genre pages depend on.
type BookFinder interface {
	FindByGenre(ctx context.Context, genreID uuid.UUID) ([]bookmodel.Book, error)
}
