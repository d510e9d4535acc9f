// Package localcache кеш записей в памяти процесса на основе go-cache.
package localcache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/fsdevblog/urlmapper/internal/cache"
	"github.com/fsdevblog/urlmapper/internal/models"
)

const cleanupInterval = 10 * time.Minute

type Cache struct {
	c *gocache.Cache
}

// tombstone значение ключа удаленной записи.
type tombstone struct{}

// New создает локальный кеш.
func New() *Cache {
	return &Cache{c: gocache.New(gocache.NoExpiration, cleanupInterval)}
}

func (l *Cache) Get(ctx context.Context, publishedURL string) (*models.Mapping, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck
	}
	val, ok := l.c.Get(cache.Key(publishedURL))
	if !ok {
		return nil, cache.ErrMiss
	}
	m, ok := val.(models.Mapping)
	if !ok {
		return nil, cache.ErrMiss
	}
	return &m, nil
}

// Add сохраняет копию записи, если ключ свободен. Нулевой ttl означает, что запись не кешируется.
func (l *Cache) Add(ctx context.Context, m *models.Mapping, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}
	if ttl <= 0 {
		return nil
	}
	// go-cache возвращает ошибку, если ключ занят; занятый ключ оставляем как есть.
	_ = l.c.Add(cache.Key(m.PublishedURL), *m, ttl)
	return nil
}

func (l *Cache) Put(ctx context.Context, m *models.Mapping, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}
	if ttl <= 0 {
		return nil
	}
	l.c.Set(cache.Key(m.PublishedURL), *m, ttl)
	return nil
}

// Invalidate ставит надгробие. При нулевом ttl ключ просто удаляется.
func (l *Cache) Invalidate(_ context.Context, publishedURL string, ttl time.Duration) error {
	if ttl <= 0 {
		l.c.Delete(cache.Key(publishedURL))
		return nil
	}
	l.c.Set(cache.Key(publishedURL), tombstone{}, ttl)
	return nil
}
