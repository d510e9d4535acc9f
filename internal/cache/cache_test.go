package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fsdevblog/urlmapper/internal/models"
)

func TestTTLFor(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	soon := now.Add(30 * time.Second)
	later := now.Add(time.Hour)
	past := now.Add(-time.Second)

	tests := []struct {
		name string
		exp  *time.Time
		ttl  time.Duration
		want time.Duration
	}{
		{name: "no expiration", exp: nil, ttl: time.Minute, want: time.Minute},
		{name: "expires before ttl", exp: &soon, ttl: time.Minute, want: 30 * time.Second},
		{name: "expires after ttl", exp: &later, ttl: time.Minute, want: time.Minute},
		{name: "already expired", exp: &past, ttl: time.Minute, want: 0},
		{name: "cache disabled", exp: nil, ttl: 0, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TTLFor(&models.Mapping{ExpirationDate: tt.exp}, tt.ttl, now))
		})
	}
}

func TestKey(t *testing.T) {
	assert.Equal(t, "mapping:https://s.io/abc", Key("https://s.io/abc"))
}
