package repository

import (
	"context"

	"github.com/google/uuid"

	"locallibrary/internal/domains/author/model"
)

// RepositoryInterface is the author store.
type RepositoryInterface interface {
	// FindAll returns every author ordered by family name, then first name.
	FindAll(ctx context.Context) ([]model.Author, error)

	// FindByID returns model.ErrAuthorNotFound when no row matches.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Author, error)

	// FindByName matches first and family name exactly.
	// Returns model.ErrAuthorNotFound when no row matches.
	FindByName(ctx context.Context, firstName, familyName string) (*model.Author, error)

	Create(ctx context.Context, a *model.Author) (*model.Author, error)

	// Update overwrites the row with a.ID, keeping the id.
	Update(ctx context.Context, a *model.Author) (*model.Author, error)

	// DeleteIfUnreferenced deletes the author only while no book references
	// it. Returns model.ErrAuthorHasBooks otherwise.
	DeleteIfUnreferenced(ctx context.Context, id uuid.UUID) error

	Count(ctx context.Context) (int, error)
}
