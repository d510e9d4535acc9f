// Package rediscache общий кеш записей на Redis.
package rediscache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/fsdevblog/urlmapper/internal/cache"
	"github.com/fsdevblog/urlmapper/internal/models"
)

// tombstoneValue значение ключа удаленной записи. Валидный JSON записи всегда начинается с '{'.
const tombstoneValue = "tombstone"

type Cache struct {
	client *redis.Client
}

// New создает кеш поверх клиента Redis.
//
// Параметры:
//   - client: клиент Redis
//
// Возвращает:
//   - *Cache: кеш
func New(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// NewClient создает клиента Redis и проверяет соединение.
func NewClient(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  5 * time.Second, //nolint:mnd
		ReadTimeout:  3 * time.Second, //nolint:mnd
		WriteTimeout: 3 * time.Second, //nolint:mnd
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return client, nil
}

func (c *Cache) Get(ctx context.Context, publishedURL string) (*models.Mapping, error) {
	data, err := c.client.Get(ctx, cache.Key(publishedURL)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, cache.ErrMiss
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}
	if string(data) == tombstoneValue {
		return nil, cache.ErrMiss
	}
	var m models.Mapping
	if err = json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal cached mapping: %w", err)
	}
	return &m, nil
}

// Add сохраняет запись, если ключ свободен (SET NX). Нулевой ttl означает, что запись не кешируется.
func (c *Cache) Add(ctx context.Context, m *models.Mapping, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal mapping: %w", err)
	}
	if err = c.client.SetNX(ctx, cache.Key(m.PublishedURL), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis setnx: %w", err)
	}
	return nil
}

func (c *Cache) Put(ctx context.Context, m *models.Mapping, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal mapping: %w", err)
	}
	if err = c.client.Set(ctx, cache.Key(m.PublishedURL), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Invalidate ставит надгробие. При нулевом ttl ключ просто удаляется.
func (c *Cache) Invalidate(ctx context.Context, publishedURL string, ttl time.Duration) error {
	var err error
	if ttl <= 0 {
		err = c.client.Del(ctx, cache.Key(publishedURL)).Err()
	} else {
		err = c.client.Set(ctx, cache.Key(publishedURL), tombstoneValue, ttl).Err()
	}
	if err != nil {
		return fmt.Errorf("redis invalidate: %w", err)
	}
	return nil
}
