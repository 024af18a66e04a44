package service

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	authormodel "locallibrary/internal/domains/author/model"
	"locallibrary/internal/domains/book/model"
	"locallibrary/internal/domains/book/repository"
	genremodel "locallibrary/internal/domains/genre/model"
	"locallibrary/pkg/parallel"
)

type bookService struct {
	repo    repository.RepositoryInterface
	authors AuthorLister
	genres  GenreLister
}

func NewBookService(repo repository.RepositoryInterface, authors AuthorLister, genres GenreLister) ServiceInterface {
	return &bookService{
		repo:    repo,
		authors: authors,
		genres:  genres,
	}
}

func (s *bookService) List(ctx context.Context) ([]model.Book, error) {
	books, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(books, func(a, b model.Book) int {
		return strings.Compare(a.Title, b.Title)
	})
	return books, nil
}

func (s *bookService) Detail(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *bookService) FormOptions(ctx context.Context) ([]authormodel.Author, []genremodel.Genre, error) {
	return parallel.Pair(ctx, s.authors.List, s.genres.List)
}

// Create inserts b. Books are not deduplicated.
func (s *bookService) Create(ctx context.Context, b model.Book) (*model.Book, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &b)
	if err != nil {
		return nil, err
	}

	log.Info().Str("book_id", created.ID.String()).Msg("[BOOK] created")
	return created, nil
}

func (s *bookService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
