package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMapping_IsExpired(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	tests := []struct {
		name string
		exp  *time.Time
		want bool
	}{
		{name: "no expiration", exp: nil, want: false},
		{name: "past", exp: &past, want: true},
		{name: "future", exp: &future, want: false},
		{name: "exactly now", exp: &now, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Mapping{ExpirationDate: tt.exp}
			assert.Equal(t, tt.want, m.IsExpired(now))
		})
	}
}

func TestJoinPublishedURL(t *testing.T) {
	assert.Equal(t, "https://s.io/abc12345", JoinPublishedURL("https://s.io", "abc12345"))
	assert.Equal(t, "https://s.io/abc12345", JoinPublishedURL("https://s.io/", "abc12345"))
}
