package model

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBook_URL(t *testing.T) {
	id := uuid.New()
	b := Book{ID: id, AuthorID: uuid.New(), GenreID: uuid.New()}

	assert.Equal(t, "/catalog/book/"+id.String(), b.URL())
	assert.Equal(t, "/catalog/author/"+b.AuthorID.String(), b.AuthorURL())
	assert.Equal(t, "/catalog/genre/"+b.GenreID.String(), b.GenreURL())
}

func TestBook_Validate(t *testing.T) {
	valid := Book{Title: "Dune", Summary: "Spice", ISBN: "9780441013593", AuthorID: uuid.New(), GenreID: uuid.New()}
	require.NoError(t, valid.Validate())

	long := valid
	long.Title = strings.Repeat("x", MaxTitleLength+1)
	assert.ErrorIs(t, long.Validate(), ErrInvalidTitle)

	noGenre := valid
	noGenre.GenreID = uuid.Nil
	assert.ErrorIs(t, noGenre.Validate(), ErrMissingGenre)
}

func TestBookForm_Sanitize(t *testing.T) {
	authorID := uuid.New()
	f := BookForm{
		Title:   "  Dune <1> ",
		Author:  authorID.String(),
		Summary: " Spice ",
		ISBN:    "9780441013593",
		Genre:   "not-a-uuid",
	}

	errs, err := f.Sanitize()
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "genre", errs[0].Field)
	assert.Equal(t, "Genre is not valid.", errs[0].Message)

	assert.Equal(t, "Dune &lt;1&gt;", f.Title)
	assert.Equal(t, "Spice", f.Summary)

	b := f.Book()
	assert.Equal(t, authorID, b.AuthorID)
	assert.Equal(t, uuid.Nil, b.GenreID)
}

func TestBookForm_Sanitize_EmptyKeepsFieldOrder(t *testing.T) {
	f := BookForm{}
	errs, err := f.Sanitize()
	require.NoError(t, err)

	var fields []string
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.Equal(t, []string{"title", "author", "summary", "isbn", "genre"}, fields)
}
