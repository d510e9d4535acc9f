package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/fsdevblog/urlmapper/internal/cache"
	"github.com/fsdevblog/urlmapper/internal/models"
	"github.com/fsdevblog/urlmapper/internal/repositories"
	"github.com/fsdevblog/urlmapper/internal/validation"
)

// PublishParams данные для публикации короткой ссылки.
type PublishParams struct {
	ActualURL      string     `json:"actual_url"      validate:"required,absurl"`
	PublishedURL   string     `json:"published_url"   validate:"required,absurl"`
	CustomSlug     *string    `json:"custom_slug"     validate:"omitempty,len=8,slug"`
	ExpirationDate *time.Time `json:"expiration_date" validate:"-"`
	// ShortURLBase адрес, от которого строится short_url в ответе.
	ShortURLBase string `json:"-" validate:"-"`
}

// ShortenParams данные для публикации ссылки со слагом, который подбирает сервер.
type ShortenParams struct {
	ActualURL      string
	CustomSlug     *string
	ExpirationDate *time.Time
	// Base адрес сервиса, к которому добавляется слаг.
	Base string
}

// PublishResult результат публикации.
type PublishResult struct {
	Mapping  *models.Mapping
	ShortURL *string // nil, если пользовательский слаг не задан
}

// MappingService публикует, перечисляет и удаляет соответствия ссылок.
type MappingService struct {
	repo  MappingRepository
	cache cache.Cache
	slugs SlugGenerator
	opts  Options
}

// NewMappingService создает сервис.
//
// Параметры:
//   - repo: хранилище соответствий
//   - c: кеш разрешения ссылок, инвалидируется при удалении. Может быть nil
//   - slugs: генератор слагов для Shorten
//   - opts: функции настройки
//
// Возвращает:
//   - *MappingService: сервис
func NewMappingService(
	repo MappingRepository,
	c cache.Cache,
	slugs SlugGenerator,
	opts ...func(*Options),
) *MappingService {
	if c == nil {
		c = cache.Noop{}
	}
	return &MappingService{
		repo:  repo,
		cache: c,
		slugs: slugs,
		opts:  buildOptions(opts),
	}
}

// Publish создает запись соответствия.
//
// Пустой custom_slug считается отсутствующим. Занятость слага проверяется заранее,
// но окончательное решение принимает уникальный индекс хранилища: при нарушении
// уникальности возвращается ConflictError с существующей записью.
//
// Возвращает:
//   - *PublishResult: созданная запись и short_url
//   - error: *ValidationError, *ConflictError, ErrStoreUnavailable
func (s *MappingService) Publish(ctx context.Context, p PublishParams) (*PublishResult, error) {
	if p.CustomSlug != nil && *p.CustomSlug == "" {
		p.CustomSlug = nil
	}

	if fErrs := validation.Struct(&p); len(fErrs) > 0 {
		return nil, &ValidationError{Fields: fErrs}
	}

	if p.CustomSlug != nil {
		existing, err := storeCall(ctx, s.opts.StoreTimeout, func(ctx context.Context) (*models.Mapping, error) {
			return s.repo.GetByCustomSlug(ctx, *p.CustomSlug)
		})
		switch {
		case err == nil:
			return nil, &ConflictError{Existing: existing}
		case !errors.Is(err, repositories.ErrNotFound):
			return nil, storeErr(err)
		}
	}

	now := s.opts.Clock().UTC()
	m := &models.Mapping{
		ActualURL:      p.ActualURL,
		PublishedURL:   p.PublishedURL,
		CustomSlug:     p.CustomSlug,
		ExpirationDate: p.ExpirationDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := storeCall(ctx, s.opts.StoreTimeout, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.repo.Create(ctx, m)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, s.conflict(ctx, &p)
		}
		return nil, storeErr(err)
	}

	s.refreshCache(ctx, m, now)

	result := &PublishResult{Mapping: m}
	if p.CustomSlug != nil {
		short := models.JoinPublishedURL(p.ShortURLBase, *p.CustomSlug)
		result.ShortURL = &short
	}
	return result, nil
}

// conflict находит запись, с которой столкнулась вставка: сначала по слагу, затем по опубликованной ссылке.
func (s *MappingService) conflict(ctx context.Context, p *PublishParams) error {
	lookups := make([]func(ctx context.Context) (*models.Mapping, error), 0, 2) //nolint:mnd
	if p.CustomSlug != nil {
		lookups = append(lookups, func(ctx context.Context) (*models.Mapping, error) {
			return s.repo.GetByCustomSlug(ctx, *p.CustomSlug)
		})
	}
	lookups = append(lookups, func(ctx context.Context) (*models.Mapping, error) {
		return s.repo.GetByPublishedURL(ctx, p.PublishedURL)
	})

	for _, lookup := range lookups {
		existing, err := storeCall(ctx, s.opts.StoreTimeout, lookup)
		if err == nil {
			return &ConflictError{Existing: existing}
		}
		if !errors.Is(err, repositories.ErrNotFound) {
			s.opts.Logger.Warn("lookup conflicting record", zap.Error(err))
		}
	}
	// Конфликтующая запись успела исчезнуть.
	return &ConflictError{}
}

// Shorten публикует ссылку от имени сервиса: published_url строится из Base и слага.
// Без пользовательского слага сервис генерирует случайный и повторяет попытку при коллизии.
// В результате ShortURL всегда равен published_url.
func (s *MappingService) Shorten(ctx context.Context, p ShortenParams) (*PublishResult, error) {
	if p.CustomSlug != nil && *p.CustomSlug != "" {
		res, err := s.Publish(ctx, PublishParams{
			ActualURL:      p.ActualURL,
			PublishedURL:   models.JoinPublishedURL(p.Base, *p.CustomSlug),
			CustomSlug:     p.CustomSlug,
			ExpirationDate: p.ExpirationDate,
			ShortURLBase:   p.Base,
		})
		if err != nil {
			return nil, err
		}
		res.ShortURL = &res.Mapping.PublishedURL
		return res, nil
	}

	for attempt := range s.opts.MaxGenerateAttempts {
		slug := s.slugs.Generate()
		res, err := s.Publish(ctx, PublishParams{
			ActualURL:      p.ActualURL,
			PublishedURL:   models.JoinPublishedURL(p.Base, slug),
			ExpirationDate: p.ExpirationDate,
			ShortURLBase:   p.Base,
		})
		if err == nil {
			res.ShortURL = &res.Mapping.PublishedURL
			return res, nil
		}
		if !errors.Is(err, ErrConflict) {
			return nil, err
		}
		s.opts.Logger.Debug("generated slug collision",
			zap.String("slug", slug), zap.Int("attempt", attempt+1))
	}
	return nil, fmt.Errorf("%w: no free slug after %d attempts", ErrStoreUnavailable, s.opts.MaxGenerateAttempts)
}

// List возвращает все записи в порядке возрастания id.
func (s *MappingService) List(ctx context.Context) ([]models.Mapping, error) {
	all, err := storeCall(ctx, s.opts.StoreTimeout, s.repo.List)
	if err != nil {
		return nil, storeErr(err)
	}
	return all, nil
}

// Delete удаляет запись по id и сбрасывает ее из кеша разрешения.
//
// Возвращает:
//   - error: ErrRecordNotFound если записи нет, ErrStoreUnavailable при сбое хранилища
func (s *MappingService) Delete(ctx context.Context, id int64) error {
	deleted, err := storeCall(ctx, s.opts.StoreTimeout, func(ctx context.Context) (*models.Mapping, error) {
		return s.repo.Delete(ctx, id)
	})
	if err != nil {
		return storeErr(err)
	}
	// Надгробие живет не меньше обычной записи кеша, поэтому запоздалое заполнение
	// из параллельного Resolve его не перезапишет.
	if cacheErr := s.cache.Invalidate(ctx, deleted.PublishedURL, s.opts.CacheTTL); cacheErr != nil {
		s.opts.Logger.Warn("invalidate cache",
			zap.String("published_url", deleted.PublishedURL), zap.Error(cacheErr))
	}
	return nil
}

// refreshCache кладет новую запись в кеш поверх надгробия или устаревшей записи
// с тем же published_url. Уже истекшая запись оставляет на ключе надгробие.
func (s *MappingService) refreshCache(ctx context.Context, m *models.Mapping, now time.Time) {
	var err error
	if ttl := cache.TTLFor(m, s.opts.CacheTTL, now); ttl > 0 {
		err = s.cache.Put(ctx, m, ttl)
	} else {
		err = s.cache.Invalidate(ctx, m.PublishedURL, s.opts.CacheTTL)
	}
	if err != nil {
		s.opts.Logger.Warn("refresh cache", zap.String("published_url", m.PublishedURL), zap.Error(err))
	}
}
