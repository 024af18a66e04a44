package model

import (
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const (
	MaxNameLength = 100

	// DisplayDateLayout is the medium date format of the detail pages.
	DisplayDateLayout = "Jan 2, 2006"

	placeholder = "-"
)

type Author struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	FirstName   string     `json:"first_name" db:"first_name"`
	FamilyName  string     `json:"family_name" db:"family_name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty" db:"date_of_birth"`
	DateOfDeath *time.Time `json:"date_of_death,omitempty" db:"date_of_death"`
}

// Name is "family_name, first_name".
func (a Author) Name() string {
	return a.FamilyName + ", " + a.FirstName
}

// Lifespan reports the year difference when both dates are known and
// "<birth year> - Still alive" when only the birth date is.
func (a Author) Lifespan() string {
	if a.DateOfBirth == nil {
		return placeholder
	}
	if a.DateOfDeath != nil {
		return strconv.Itoa(a.DateOfDeath.Year() - a.DateOfBirth.Year())
	}
	return strconv.Itoa(a.DateOfBirth.Year()) + " - Still alive"
}

func (a Author) BirthDate() string {
	return displayDate(a.DateOfBirth)
}

func (a Author) DeathDate() string {
	return displayDate(a.DateOfDeath)
}

func (a Author) URL() string {
	return "/catalog/author/" + a.ID.String()
}

// Validate enforces the stored name bounds. Dates are not cross-checked.
func (a Author) Validate() error {
	nameRules := []validation.Rule{validation.Required, validation.RuneLength(1, MaxNameLength)}

	if err := validation.Validate(a.FirstName, nameRules...); err != nil {
		return ErrInvalidFirstName
	}
	if err := validation.Validate(a.FamilyName, nameRules...); err != nil {
		return ErrInvalidFamilyName
	}
	return nil
}

func displayDate(t *time.Time) string {
	if t == nil {
		return placeholder
	}
	return t.Format(DisplayDateLayout)
}
