//go:build integration

package rediscache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/fsdevblog/urlmapper/internal/cache"
	"github.com/fsdevblog/urlmapper/internal/models"
)

func TestCache(t *testing.T) {
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client, err := NewClient(ctx, endpoint)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	c := New(client)
	slug := "abcd1234"
	exp := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	m := &models.Mapping{
		ID:             1,
		ActualURL:      "https://a.io/long",
		PublishedURL:   "https://s.io/abcd1234",
		CustomSlug:     &slug,
		ExpirationDate: &exp,
	}

	_, err = c.Get(ctx, m.PublishedURL)
	require.ErrorIs(t, err, cache.ErrMiss)

	require.NoError(t, c.Add(ctx, m, time.Minute))
	got, err := c.Get(ctx, m.PublishedURL)
	require.NoError(t, err)
	assert.Equal(t, m.ActualURL, got.ActualURL)
	require.NotNil(t, got.ExpirationDate)
	assert.True(t, exp.Equal(*got.ExpirationDate))

	ttl, err := client.TTL(ctx, cache.Key(m.PublishedURL)).Result()
	require.NoError(t, err)
	assert.LessOrEqual(t, ttl, time.Minute)

	require.NoError(t, c.Invalidate(ctx, m.PublishedURL, time.Minute))
	_, err = c.Get(ctx, m.PublishedURL)
	require.ErrorIs(t, err, cache.ErrMiss)

	// надгробие не дает запоздалому заполнению вернуть удаленную запись
	require.NoError(t, c.Add(ctx, m, time.Minute))
	_, err = c.Get(ctx, m.PublishedURL)
	require.ErrorIs(t, err, cache.ErrMiss)

	republished := *m
	republished.ID = 2
	republished.ActualURL = "https://a.io/new"
	require.NoError(t, c.Put(ctx, &republished, time.Minute))
	got, err = c.Get(ctx, m.PublishedURL)
	require.NoError(t, err)
	assert.Equal(t, "https://a.io/new", got.ActualURL)

	require.NoError(t, c.Invalidate(ctx, m.PublishedURL, 0))
	_, err = c.Get(ctx, m.PublishedURL)
	require.ErrorIs(t, err, cache.ErrMiss)
}
