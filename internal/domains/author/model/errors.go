package model

import "locallibrary/internal/shared/apperror"

var (
	ErrAuthorNotFound    = apperror.NotFound("Author not found")
	ErrAuthorHasBooks    = apperror.Guard("Author still has books and cannot be deleted")
	ErrInvalidFirstName  = apperror.Validation("First name must be between 1 and 100 characters")
	ErrInvalidFamilyName = apperror.Validation("Family name must be between 1 and 100 characters")
)
