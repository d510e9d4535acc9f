package validation

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAbsoluteURL(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{name: "https", raw: "https://example.com/a/b?c=d", want: true},
		{name: "http with port", raw: "http://localhost:3000/x", want: true},
		{name: "fake url", raw: gofakeit.URL(), want: true},
		{name: "empty", raw: "", want: false},
		{name: "relative path", raw: "/foo/bar", want: false},
		{name: "no scheme", raw: "example.com/foo", want: false},
		{name: "scheme without host", raw: "mailto:user@example.com", want: false},
		{name: "malformed", raw: "http://[::1", want: false},
		{name: "spaces", raw: "   ", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAbsoluteURL(tt.raw))
		})
	}
}

func TestIsSlug(t *testing.T) {
	for _, s := range []string{"abcd1234", "AB_cd-12", "-"} {
		assert.True(t, IsSlug(s), s)
	}
	for _, s := range []string{"", "ab/cd123", "ab?cd=12", "ab cd123", "ééééééé1", "ab%2Fcd1"} {
		assert.False(t, IsSlug(s), s)
	}
}

func TestStruct(t *testing.T) {
	type input struct {
		ActualURL  string  `json:"actual_url"  validate:"required,absurl"`
		CustomSlug *string `json:"custom_slug" validate:"omitempty,len=8,slug"`
	}
	good := "abcd1234"
	short := "abc"

	t.Run("valid", func(t *testing.T) {
		assert.Empty(t, Struct(input{ActualURL: "https://a.io", CustomSlug: &good}))
		assert.Empty(t, Struct(input{ActualURL: "https://a.io"}))
	})

	t.Run("invalid", func(t *testing.T) {
		errs := Struct(input{ActualURL: "nope", CustomSlug: &short})
		require.Len(t, errs, 2)
		assert.Equal(t, "actual_url", errs[0].Field)
		assert.Equal(t, "custom_slug", errs[1].Field)
	})

	t.Run("unsafe slug", func(t *testing.T) {
		unsafe := "ab/cd123"
		errs := Struct(input{ActualURL: "https://a.io", CustomSlug: &unsafe})
		require.Len(t, errs, 1)
		assert.Equal(t, "custom_slug", errs[0].Field)
		assert.Contains(t, errs[0].Message, "latin letters")
	})

	t.Run("missing", func(t *testing.T) {
		errs := Struct(&input{})
		require.Len(t, errs, 1)
		assert.Equal(t, "actual_url", errs[0].Field)
		assert.Equal(t, "is required", errs[0].Message)
	})
}
