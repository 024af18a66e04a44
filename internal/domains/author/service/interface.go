package service

import (
	"context"

	"github.com/google/uuid"

	"locallibrary/internal/domains/author/model"
	bookmodel "locallibrary/internal/domains/book/model"
)

// ServiceInterface is what the author handlers need.
type ServiceInterface interface {
	// List returns every author sorted by family name, then first name.
	List(ctx context.Context) ([]model.Author, error)

	// Detail fetches the author and their books concurrently.
	Detail(ctx context.Context, id uuid.UUID) (*model.Author, []bookmodel.Book, error)

	Get(ctx context.Context, id uuid.UUID) (*model.Author, error)

	// CreateOrFind returns the existing author with the same first and
	// family name, or inserts a. created reports whether an insert happened.
	CreateOrFind(ctx context.Context, a model.Author) (author *model.Author, created bool, err error)

	// Update replaces the author with a.ID. Names are not deduplicated.
	Update(ctx context.Context, a model.Author) (*model.Author, error)

	// Delete removes the author unless books still reference them.
	Delete(ctx context.Context, id uuid.UUID) error

	Count(ctx context.Context) (int, error)
}

// BookFinder is the part of the book store the author pages depend on.
type BookFinder interface {
	FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]bookmodel.Book, error)
}
