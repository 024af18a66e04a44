package model

import (
	"github.com/google/uuid"
)

const (
	MaxTitleLength = 200
	MaxISBNLength  = 20
)

// Book is a catalog title. AuthorName and GenreName are filled by the
// joined reads only; they are not stored on the books table.
type Book struct {
	ID       uuid.UUID `json:"id" db:"id"`
	Title    string    `json:"title" db:"title"`
	Summary  string    `json:"summary" db:"summary"`
	ISBN     string    `json:"isbn" db:"isbn"`
	AuthorID uuid.UUID `json:"author_id" db:"author_id"`
	GenreID  uuid.UUID `json:"genre_id" db:"genre_id"`

	AuthorName string `json:"author_name,omitempty" db:"author_name"`
	GenreName  string `json:"genre_name,omitempty" db:"genre_name"`
}

func (b Book) URL() string {
	return "/catalog/book/" + b.ID.String()
}

// AuthorURL and GenreURL link the detail page to the referenced records.
func (b Book) AuthorURL() string {
	return "/catalog/author/" + b.AuthorID.String()
}

func (b Book) GenreURL() string {
	return "/catalog/genre/" + b.GenreID.String()
}
