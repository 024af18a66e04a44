package service

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"locallibrary/internal/domains/author/model"
	"locallibrary/internal/domains/author/repository"
	bookmodel "locallibrary/internal/domains/book/model"
	"locallibrary/pkg/parallel"
)

type authorService struct {
	repo  repository.RepositoryInterface
	books BookFinder
}

func NewAuthorService(repo repository.RepositoryInterface, books BookFinder) ServiceInterface {
	return &authorService{
		repo:  repo,
		books: books,
	}
}

func (s *authorService) List(ctx context.Context) ([]model.Author, error) {
	authors, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(authors, func(a, b model.Author) int {
		if c := strings.Compare(a.FamilyName, b.FamilyName); c != 0 {
			return c
		}
		return strings.Compare(a.FirstName, b.FirstName)
	})
	return authors, nil
}

func (s *authorService) Detail(ctx context.Context, id uuid.UUID) (*model.Author, []bookmodel.Book, error) {
	return parallel.Pair(ctx,
		func(ctx context.Context) (*model.Author, error) {
			return s.repo.FindByID(ctx, id)
		},
		func(ctx context.Context) ([]bookmodel.Book, error) {
			return s.books.FindByAuthor(ctx, id)
		},
	)
}

func (s *authorService) Get(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *authorService) CreateOrFind(ctx context.Context, a model.Author) (*model.Author, bool, error) {
	if err := a.Validate(); err != nil {
		return nil, false, err
	}

	existing, err := s.repo.FindByName(ctx, a.FirstName, a.FamilyName)
	switch {
	case err == nil:
		return existing, false, nil
	case !errors.Is(err, model.ErrAuthorNotFound):
		return nil, false, err
	}

	created, err := s.repo.Create(ctx, &a)
	if err != nil {
		return nil, false, err
	}

	log.Info().Str("author_id", created.ID.String()).Msg("[AUTHOR] created")
	return created, true, nil
}

func (s *authorService) Update(ctx context.Context, a model.Author) (*model.Author, error) {
	if a.ID == uuid.Nil {
		return nil, model.ErrAuthorNotFound
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, &a)
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteIfUnreferenced(ctx, id); err != nil {
		return err
	}

	log.Info().Str("author_id", id.String()).Msg("[AUTHOR] deleted")
	return nil
}

func (s *authorService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
