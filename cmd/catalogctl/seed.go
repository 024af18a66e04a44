package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	authormodel "locallibrary/internal/domains/author/model"
	bookmodel "locallibrary/internal/domains/book/model"
	genremodel "locallibrary/internal/domains/genre/model"
	"locallibrary/pkg/container"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert a small demo catalog",
	Long: `Creates a handful of genres, authors and books. Genres and authors are
matched by name so running seed twice does not duplicate them; books are only
inserted into an empty catalog.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(func(c *container.Container) error {
			return seedCatalog(cmd.Context(), cmd.OutOrStdout(), seeder{
				genres:  c.GenreService,
				authors: c.AuthorService,
				books:   c.BookService,
			})
		})
	},
}

type genreCreator interface {
	CreateOrFind(ctx context.Context, g genremodel.Genre) (*genremodel.Genre, bool, error)
}

type authorCreator interface {
	CreateOrFind(ctx context.Context, a authormodel.Author) (*authormodel.Author, bool, error)
}

type bookCreator interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, b bookmodel.Book) (*bookmodel.Book, error)
}

type seeder struct {
	genres  genreCreator
	authors authorCreator
	books   bookCreator
}

type seedAuthor struct {
	first, family string
	born, died    string
}

type seedBook struct {
	title, summary, isbn string
	author, genre        int
}

var (
	seedGenres = []string{"Fantasy", "Science Fiction", "French Poetry"}

	seedAuthors = []seedAuthor{
		{first: "Patrick", family: "Rothfuss", born: "1973-06-06"},
		{first: "Ben", family: "Bova", born: "1932-11-08"},
		{first: "Isaac", family: "Asimov", born: "1920-01-02", died: "1992-04-06"},
		{first: "Bob", family: "Billings"},
		{first: "Jim", family: "Jones", born: "1971-12-16"},
	}

	seedBooks = []seedBook{
		{"The Name of the Wind", "The tale of Kvothe, from his childhood in a troupe of traveling players to his years at the University.", "9781473211896", 0, 0},
		{"The Wise Man's Fear", "Kvothe continues his search for the Amyr and the Chandrian.", "9788401352836", 0, 0},
		{"The Slow Regard of Silent Things", "Deep below the University there is a dark place where Auri lives.", "9780756411336", 0, 0},
		{"Apes and Angels", "Humankind's first emissaries race against a wave of destruction.", "9780765379528", 1, 1},
		{"Death Wave", "Ben Bova's sequel to New Earth.", "9780765379504", 1, 1},
		{"Foundation", "The Galactic Empire is falling and Hari Seldon has a plan.", "9780553293357", 2, 1},
		{"Test Book 1", "Summary of test book 1", "ISBN111111", 4, 2},
	}
)

// seedCatalog creates the demo records through the services so the same
// validation and cache invalidation apply as for web submissions.
func seedCatalog(ctx context.Context, out io.Writer, s seeder) error {
	genres := make([]*genremodel.Genre, 0, len(seedGenres))
	for _, name := range seedGenres {
		g, created, err := s.genres.CreateOrFind(ctx, genremodel.Genre{Name: name})
		if err != nil {
			return fmt.Errorf("seed genre %q: %w", name, err)
		}
		report(out, "genre", g.Name, created)
		genres = append(genres, g)
	}

	authors := make([]*authormodel.Author, 0, len(seedAuthors))
	for _, sa := range seedAuthors {
		a, created, err := s.authors.CreateOrFind(ctx, authormodel.Author{
			FirstName:   sa.first,
			FamilyName:  sa.family,
			DateOfBirth: seedDate(sa.born),
			DateOfDeath: seedDate(sa.died),
		})
		if err != nil {
			return fmt.Errorf("seed author %s %s: %w", sa.first, sa.family, err)
		}
		report(out, "author", a.Name(), created)
		authors = append(authors, a)
	}

	count, err := s.books.Count(ctx)
	if err != nil {
		return fmt.Errorf("count books: %w", err)
	}
	if count > 0 {
		log.Info().Int("books", count).Msg("[Seed] catalog already has books, skipping")
		fmt.Fprintf(out, "books: %d already present, skipped\n", count)
		return nil
	}

	for _, sb := range seedBooks {
		b, err := s.books.Create(ctx, bookmodel.Book{
			Title:    sb.title,
			Summary:  sb.summary,
			ISBN:     sb.isbn,
			AuthorID: authors[sb.author].ID,
			GenreID:  genres[sb.genre].ID,
		})
		if err != nil {
			return fmt.Errorf("seed book %q: %w", sb.title, err)
		}
		report(out, "book", b.Title, true)
	}
	return nil
}

func report(out io.Writer, kind, name string, created bool) {
	verb := "exists "
	if created {
		verb = "created"
	}
	fmt.Fprintf(out, "%s %-7s %s\n", verb, kind, name)
}

func seedDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(fmt.Sprintf("bad seed date %q", s))
	}
	return &t
}
