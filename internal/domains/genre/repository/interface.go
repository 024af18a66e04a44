package repository

import (
	"context"

	"github.com/google/uuid"

	"locallibrary/internal/domains/genre/model"
)

// RepositoryInterface is the genre store.
type RepositoryInterface interface {
	// FindAll returns every genre ordered by name.
	FindAll(ctx context.Context) ([]model.Genre, error)

	// FindByID returns model.ErrGenreNotFound when no row matches.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Genre, error)

	// FindByName matches the name exactly (case-sensitive).
	// Returns model.ErrGenreNotFound when no row matches.
	FindByName(ctx context.Context, name string) (*model.Genre, error)

	Create(ctx context.Context, g *model.Genre) (*model.Genre, error)

	// Update overwrites the row with g.ID, keeping the id.
	Update(ctx context.Context, g *model.Genre) (*model.Genre, error)

	// DeleteIfUnreferenced deletes the genre only while no book references
	// it. Returns model.ErrGenreHasBooks otherwise.
	DeleteIfUnreferenced(ctx context.Context, id uuid.UUID) error

	Count(ctx context.Context) (int, error)
}
