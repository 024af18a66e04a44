package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"locallibrary/internal/shared/form"
)

// BookForm is the body of POST /catalog/book/create.
type BookForm struct {
	Title   string `form:"title" json:"title"`
	Author  string `form:"author" json:"author"`
	Summary string `form:"summary" json:"summary"`
	ISBN    string `form:"isbn" json:"isbn"`
	Genre   string `form:"genre" json:"genre"`
}

var bookFieldOrder = []string{"title", "author", "summary", "isbn", "genre"}

// Sanitize trims, validates and escapes the form in place.
func (f *BookForm) Sanitize() ([]form.FieldError, error) {
	form.Trim(&f.Title, &f.Author, &f.Summary, &f.ISBN, &f.Genre)

	verr := validation.ValidateStruct(f,
		validation.Field(&f.Title,
			validation.Required.Error("Title must not be empty."),
			validation.RuneLength(0, MaxTitleLength).Error("Title is too long."),
		),
		validation.Field(&f.Author,
			validation.Required.Error("Author must not be empty."),
			is.UUID.Error("Author is not valid."),
		),
		validation.Field(&f.Summary,
			validation.Required.Error("Summary must not be empty."),
		),
		validation.Field(&f.ISBN,
			validation.Required.Error("ISBN must not be empty"),
			validation.RuneLength(0, MaxISBNLength).Error("ISBN is too long."),
		),
		validation.Field(&f.Genre,
			validation.Required.Error("Genre must not be empty."),
			is.UUID.Error("Genre is not valid."),
		),
	)

	errs, err := form.Collect(verr, bookFieldOrder...)
	form.Escape(&f.Title, &f.Summary, &f.ISBN)
	return errs, err
}

// Book builds the candidate record. Unparseable references are left as
// uuid.Nil; Sanitize has already reported them.
func (f BookForm) Book() Book {
	authorID, _ := uuid.Parse(f.Author)
	genreID, _ := uuid.Parse(f.Genre)
	return Book{
		Title:    f.Title,
		Summary:  f.Summary,
		ISBN:     f.ISBN,
		AuthorID: authorID,
		GenreID:  genreID,
	}
}
