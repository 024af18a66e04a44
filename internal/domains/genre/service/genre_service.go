package service

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	bookmodel "locallibrary/internal/domains/book/model"
	"locallibrary/internal/domains/genre/model"
	"locallibrary/internal/domains/genre/repository"
	"locallibrary/pkg/parallel"
)

type genreService struct {
	repo  repository.RepositoryInterface
	books BookFinder
}

func NewGenreService(repo repository.RepositoryInterface, books BookFinder) ServiceInterface {
	return &genreService{
		repo:  repo,
		books: books,
	}
}

func (s *genreService) List(ctx context.Context) ([]model.Genre, error) {
	genres, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	// the store orders by its collation; the page orders by code point
	slices.SortStableFunc(genres, func(a, b model.Genre) int {
		return strings.Compare(a.Name, b.Name)
	})
	return genres, nil
}

func (s *genreService) Detail(ctx context.Context, id uuid.UUID) (*model.Genre, []bookmodel.Book, error) {
	return parallel.Pair(ctx,
		func(ctx context.Context) (*model.Genre, error) {
			return s.repo.FindByID(ctx, id)
		},
		func(ctx context.Context) ([]bookmodel.Book, error) {
			return s.books.FindByGenre(ctx, id)
		},
	)
}

func (s *genreService) Get(ctx context.Context, id uuid.UUID) (*model.Genre, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *genreService) CreateOrFind(ctx context.Context, g model.Genre) (*model.Genre, bool, error) {
	if err := g.Validate(); err != nil {
		return nil, false, err
	}

	existing, err := s.repo.FindByName(ctx, g.Name)
	switch {
	case err == nil:
		return existing, false, nil
	case !errors.Is(err, model.ErrGenreNotFound):
		return nil, false, err
	}

	created, err := s.repo.Create(ctx, &g)
	if err != nil {
		return nil, false, err
	}

	log.Info().Str("genre_id", created.ID.String()).Msg("[GENRE] created")
	return created, true, nil
}

func (s *genreService) Update(ctx context.Context, g model.Genre) (*model.Genre, error) {
	if g.ID == uuid.Nil {
		return nil, model.ErrGenreNotFound
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, &g)
}

func (s *genreService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteIfUnreferenced(ctx, id); err != nil {
		return err
	}

	log.Info().Str("genre_id", id.String()).Msg("[GENRE] deleted")
	return nil
}

func (s *genreService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
