package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"locallibrary/pkg/parallel"
)

// Counter is satisfied by the book, author and genre services.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// IndexHandler renders the catalog home page with record counts.
type IndexHandler struct {
	books   Counter
	authors Counter
	genres  Counter
}

func NewIndexHandler(books, authors, genres Counter) *IndexHandler {
	return &IndexHandler{
		books:   books,
		authors: authors,
		genres:  genres,
	}
}

// Index - GET /catalog
func (h *IndexHandler) Index(c *gin.Context) {
	var bookCount, authorCount, genreCount int

	err := parallel.All(c.Request.Context(),
		count(h.books, &bookCount),
		count(h.authors, &authorCount),
		count(h.genres, &genreCount),
	)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "index", gin.H{
		"title":        "Local Library Home",
		"book_count":   bookCount,
		"author_count": authorCount,
		"genre_count":  genreCount,
	})
}

func count(counter Counter, dest *int) func(context.Context) error {
	return func(ctx context.Context) error {
		n, err := counter.Count(ctx)
		if err != nil {
			return err
		}
		*dest = n
		return nil
	}
}
