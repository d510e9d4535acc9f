package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/fsdevblog/urlmapper/internal/cache"
	"github.com/fsdevblog/urlmapper/internal/models"
)

// RedirectResolver находит цель перенаправления по опубликованной ссылке.
type RedirectResolver struct {
	repo  MappingRepository
	cache cache.Cache
	opts  Options
}

func NewRedirectResolver(repo MappingRepository, c cache.Cache, opts ...func(*Options)) *RedirectResolver {
	if c == nil {
		c = cache.Noop{}
	}
	return &RedirectResolver{
		repo:  repo,
		cache: c,
		opts:  buildOptions(opts),
	}
}

// Resolve ищет запись по точному совпадению published_url: сначала в кеше, затем в хранилище.
// Срок действия проверяется при каждом обращении, в том числе для записей из кеша.
//
// Параметры:
//   - ctx: контекст выполнения
//   - publishedURL: опубликованная ссылка, восстановленная из входящего запроса
//
// Возвращает:
//   - *models.Mapping: найденная запись
//   - error: ErrRecordNotFound, ErrExpired, ErrStoreUnavailable
func (r *RedirectResolver) Resolve(ctx context.Context, publishedURL string) (*models.Mapping, error) {
	now := r.opts.Clock()

	m, err := r.cache.Get(ctx, publishedURL)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			r.opts.Logger.Warn("cache get", zap.String("published_url", publishedURL), zap.Error(err))
		}

		m, err = storeCall(ctx, r.opts.StoreTimeout, func(ctx context.Context) (*models.Mapping, error) {
			return r.repo.GetByPublishedURL(ctx, publishedURL)
		})
		if err != nil {
			return nil, storeErr(err)
		}

		// Add не перезаписывает надгробие, поставленное параллельным Delete.
		if ttl := cache.TTLFor(m, r.opts.CacheTTL, now); ttl > 0 {
			if addErr := r.cache.Add(ctx, m, ttl); addErr != nil {
				r.opts.Logger.Warn("cache add", zap.String("published_url", publishedURL), zap.Error(addErr))
			}
		}
	}

	if m.IsExpired(now) {
		return nil, fmt.Errorf("%w: %s expired at %s", ErrExpired, publishedURL, m.ExpirationDate)
	}
	return m, nil
}
