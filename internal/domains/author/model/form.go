package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"locallibrary/internal/shared/form"
)

// AuthorForm is the body of the create and update forms. Dates arrive as
// YYYY-MM-DD strings from <input type="date">.
type AuthorForm struct {
	FirstName   string `form:"first_name" json:"first_name"`
	FamilyName  string `form:"family_name" json:"family_name"`
	DateOfBirth string `form:"date_of_birth" json:"date_of_birth"`
	DateOfDeath string `form:"date_of_death" json:"date_of_death"`
}

var authorFieldOrder = []string{"first_name", "family_name", "date_of_birth", "date_of_death"}

// FormOf pre-fills the form from a stored author.
func FormOf(a Author) AuthorForm {
	return AuthorForm{
		FirstName:   a.FirstName,
		FamilyName:  a.FamilyName,
		DateOfBirth: form.FormatDate(a.DateOfBirth),
		DateOfDeath: form.FormatDate(a.DateOfDeath),
	}
}

// Sanitize trims, validates and escapes the form in place.
func (f *AuthorForm) Sanitize() ([]form.FieldError, error) {
	form.Trim(&f.FirstName, &f.FamilyName, &f.DateOfBirth, &f.DateOfDeath)

	verr := validation.ValidateStruct(f,
		validation.Field(&f.FirstName,
			validation.Required.Error("First name must be specified."),
			validation.RuneLength(0, MaxNameLength).Error("First name is too long."),
			is.Alphanumeric.Error("First name has non-alphanumeric characters."),
		),
		validation.Field(&f.FamilyName,
			validation.Required.Error("Family name must be specified."),
			validation.RuneLength(0, MaxNameLength).Error("Family name is too long."),
			is.Alphanumeric.Error("Family name has non-alphanumeric characters."),
		),
		validation.Field(&f.DateOfBirth,
			validation.Date(form.DateLayout).Error("Invalid date of birth"),
		),
		validation.Field(&f.DateOfDeath,
			validation.Date(form.DateLayout).Error("Invalid date of death"),
		),
	)

	errs, err := form.Collect(verr, authorFieldOrder...)
	form.Escape(&f.FirstName, &f.FamilyName)
	return errs, err
}

// Author builds the candidate record. Dates that failed validation are
// left nil.
func (f AuthorForm) Author() Author {
	birth, _ := form.ParseDate(f.DateOfBirth)
	death, _ := form.ParseDate(f.DateOfDeath)
	return Author{
		FirstName:   f.FirstName,
		FamilyName:  f.FamilyName,
		DateOfBirth: birth,
		DateOfDeath: death,
	}
}
