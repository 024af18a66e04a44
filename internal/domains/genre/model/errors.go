package model

import "locallibrary/internal/shared/apperror"

var (
	ErrGenreNotFound = apperror.NotFound("Genre not found")
	ErrGenreHasBooks = apperror.Guard("Genre still has books and cannot be deleted")
	ErrInvalidName   = apperror.Validation("Genre name must be between 3 and 100 characters")
)
