package model

import (
	"unicode/utf8"

	"github.com/google/uuid"
)

// Validate checks the write-time constraints of the books table.
func (b Book) Validate() error {
	switch {
	case b.Title == "" || utf8.RuneCountInString(b.Title) > MaxTitleLength:
		return ErrInvalidTitle
	case b.Summary == "":
		return ErrEmptySummary
	case b.ISBN == "" || utf8.RuneCountInString(b.ISBN) > MaxISBNLength:
		return ErrInvalidISBN
	case b.AuthorID == uuid.Nil:
		return ErrMissingAuthor
	case b.GenreID == uuid.Nil:
		return ErrMissingGenre
	}
	return nil
}
