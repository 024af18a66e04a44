package model

import "locallibrary/internal/shared/apperror"

var (
	ErrBookNotFound  = apperror.NotFound("Book not found")
	ErrInvalidTitle  = apperror.Validation("Title must be between 1 and 200 characters")
	ErrInvalidISBN   = apperror.Validation("ISBN must be between 1 and 20 characters")
	ErrEmptySummary  = apperror.Validation("Summary must not be empty")
	ErrMissingAuthor = apperror.Validation("Author must not be empty")
	ErrMissingGenre  = apperror.Validation("Genre must not be empty")

	// ErrUnknownReference is returned when the author or genre of a new
	// book no longer exists.
	ErrUnknownReference = apperror.Validation("Selected author or genre does not exist")
)
