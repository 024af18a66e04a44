package model

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenre_URLContainsID(t *testing.T) {
	for _, name := range []string{"abc", "Fantasy", strings.Repeat("n", MaxNameLength)} {
		g := Genre{ID: uuid.New(), Name: name}
		require.NoError(t, g.Validate())
		assert.Equal(t, "/catalog/genre/"+g.ID.String(), g.URL())
		assert.Contains(t, g.URL(), g.ID.String())
	}
}

func TestGenre_Validate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"empty", "", true},
		{"too short", "ab", true},
		{"min", "abc", false},
		{"multibyte counts runes", "ééé", false},
		{"max", strings.Repeat("a", MaxNameLength), false},
		{"too long", strings.Repeat("a", MaxNameLength+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Genre{Name: tt.value}.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidName)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenreForm_Sanitize(t *testing.T) {
	t.Run("blank name", func(t *testing.T) {
		f := GenreForm{Name: "   "}
		errs, err := f.Sanitize()
		require.NoError(t, err)
		require.Len(t, errs, 1)
		assert.Equal(t, "name", errs[0].Field)
		assert.Equal(t, "Genre name required", errs[0].Message)
		assert.Equal(t, "", f.Name)
	})

	t.Run("short name", func(t *testing.T) {
		f := GenreForm{Name: " ab "}
		errs, err := f.Sanitize()
		require.NoError(t, err)
		require.Len(t, errs, 1)
		assert.Equal(t, "ab", f.Name)
	})

	t.Run("trims and escapes", func(t *testing.T) {
		f := GenreForm{Name: "  Sci <Fi>  "}
		errs, err := f.Sanitize()
		require.NoError(t, err)
		assert.Empty(t, errs)
		assert.Equal(t, "Sci &lt;Fi&gt;", f.Name)
		assert.Equal(t, Genre{Name: "Sci &lt;Fi&gt;"}, f.Genre())
	})
}

func TestGenreForm_ResubmitEscapesAgain(t *testing.T) {
	f := GenreForm{Name: "Sci & Fi"}
	errs, err := f.Sanitize()
	require.NoError(t, err)
	require.Empty(t, errs)
	assert.Equal(t, "Sci &amp; Fi", f.Name)

	// Editing a stored name submits the stored, already escaped value.
	again := GenreForm{Name: f.Name}
	errs, err = again.Sanitize()
	require.NoError(t, err)
	require.Empty(t, errs)
	assert.Equal(t, "Sci &amp;amp; Fi", again.Name)
}
