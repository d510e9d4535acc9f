// Package cache описывает кеш разрешения коротких ссылок.
//
// Ключом кеша служит published_url, значением запись models.Mapping или надгробие.
// Надгробие пишется при удалении записи и не дает заполнению кеша после чтения из хранилища
// вернуть удаленную запись: Add не трогает занятый ключ, Get видит надгробие как промах.
// Реализации: rediscache (общий кеш на Redis) и localcache (кеш процесса, только для одного экземпляра).
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/fsdevblog/urlmapper/internal/models"
)

// ErrMiss запись в кеше отсутствует.
var ErrMiss = errors.New("[cache]: miss")

// KeyPrefix префикс ключей кеша.
const KeyPrefix = "mapping:"

// Key возвращает ключ кеша для опубликованной ссылки.
func Key(publishedURL string) string {
	return KeyPrefix + publishedURL
}

//go:generate mockgen -source=cache.go -destination=../services/mocks/cache.go -package=mocks

// Cache кеш записей по опубликованной ссылке.
type Cache interface {
	// Get возвращает запись или ErrMiss, если ключа нет или на нем надгробие.
	Get(ctx context.Context, publishedURL string) (*models.Mapping, error)
	// Add сохраняет запись, только если ключ свободен. Занятый ключ не ошибка.
	Add(ctx context.Context, m *models.Mapping, ttl time.Duration) error
	// Put сохраняет запись, перезаписывая ключ, в том числе надгробие.
	Put(ctx context.Context, m *models.Mapping, ttl time.Duration) error
	// Invalidate ставит на ключ надгробие на время ttl.
	Invalidate(ctx context.Context, publishedURL string, ttl time.Duration) error
}

// TTLFor ограничивает время жизни записи в кеше моментом истечения ссылки.
// Возвращает 0, если запись кешировать не нужно.
func TTLFor(m *models.Mapping, ttl time.Duration, now time.Time) time.Duration {
	if ttl <= 0 {
		return 0
	}
	if m.ExpirationDate == nil {
		return ttl
	}
	left := m.ExpirationDate.Sub(now)
	if left <= 0 {
		return 0
	}
	return min(ttl, left)
}

// Noop кеш, который ничего не хранит. Используется, когда кеширование выключено.
type Noop struct{}

func (Noop) Get(context.Context, string) (*models.Mapping, error)      { return nil, ErrMiss }
func (Noop) Add(context.Context, *models.Mapping, time.Duration) error { return nil }
func (Noop) Put(context.Context, *models.Mapping, time.Duration) error { return nil }
func (Noop) Invalidate(context.Context, string, time.Duration) error   { return nil }
