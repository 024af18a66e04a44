// Package form holds the helpers shared by the catalog's HTML forms:
// trimming and escaping submitted values and turning ozzo-validation
// results into an ordered list of field messages for the templates.
package form

import (
	"errors"
	"sort"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"locallibrary/internal/shared/apperror"
)

// DateLayout is the layout of <input type="date"> values.
const DateLayout = "2006-01-02"

// FieldError is one message shown next to the form.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"msg"`
}

// markup-significant characters, same set as express-validator's escape()
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"\"", "&quot;",
	"'", "&#x27;",
	"<", "&lt;",
	">", "&gt;",
	"/", "&#x2F;",
	"\\", "&#x5C;",
	"`", "&#96;",
)

// Trim strips surrounding whitespace from every field in place.
func Trim(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

// Escape replaces markup-significant characters in every field in place.
func Escape(fields ...*string) {
	for _, f := range fields {
		*f = escaper.Replace(*f)
	}
}

// Collect flattens the result of validation.ValidateStruct into field
// errors. Fields listed in order come first, in that order; any other
// failing field follows sorted by name. Internal validation errors (a
// misconfigured rule, not bad input) are returned as err.
func Collect(verr error, order ...string) ([]FieldError, error) {
	if verr == nil {
		return nil, nil
	}

	var internal validation.InternalError
	if errors.As(verr, &internal) {
		return nil, internal
	}

	var fieldErrs validation.Errors
	if !errors.As(verr, &fieldErrs) {
		return []FieldError{{Message: verr.Error()}}, nil
	}

	seen := make(map[string]bool, len(fieldErrs))
	out := make([]FieldError, 0, len(fieldErrs))
	for _, name := range order {
		if e, ok := fieldErrs[name]; ok && e != nil {
			out = append(out, FieldError{Field: name, Message: e.Error()})
			seen[name] = true
		}
	}

	rest := make([]string, 0)
	for name, e := range fieldErrs {
		if !seen[name] && e != nil {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		out = append(out, FieldError{Field: name, Message: fieldErrs[name].Error()})
	}

	return out, nil
}

// FromError converts a schema validation error returned by a service into
// a form message for field. Other errors yield nil.
func FromError(err error, field string) []FieldError {
	var appErr *apperror.Error
	if errors.As(err, &appErr) && appErr.Kind == apperror.KindValidation {
		return []FieldError{{Field: field, Message: appErr.Message}}
	}
	return nil
}

// ParseDate parses an optional date input. Empty input yields nil.
func ParseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate renders t for a date input, "" when t is nil.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}
