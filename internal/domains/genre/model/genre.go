package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"locallibrary/internal/shared/form"
)

const (
	MinNameLength = 3
	MaxNameLength = 100
)

type Genre struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name string    `json:"name" db:"name"`
}

// URL is the canonical path of the genre's detail page.
func (g Genre) URL() string {
	return "/catalog/genre/" + g.ID.String()
}

// Validate enforces the stored name bounds.
func (g Genre) Validate() error {
	if err := validation.Validate(g.Name,
		validation.Required,
		validation.RuneLength(MinNameLength, MaxNameLength),
	); err != nil {
		return ErrInvalidName
	}
	return nil
}

// GenreForm is the body of the create and update forms.
type GenreForm struct {
	Name string `form:"name" json:"name"`
}

// Sanitize trims, validates and escapes the form in place.
func (f *GenreForm) Sanitize() ([]form.FieldError, error) {
	form.Trim(&f.Name)

	verr := validation.ValidateStruct(f,
		validation.Field(&f.Name,
			validation.Required.Error("Genre name required"),
			validation.RuneLength(MinNameLength, MaxNameLength).
				Error("Genre name must be between 3 and 100 characters"),
		),
	)

	errs, err := form.Collect(verr, "name")
	form.Escape(&f.Name)
	return errs, err
}

func (f GenreForm) Genre() Genre {
	return Genre{Name: f.Name}
}
