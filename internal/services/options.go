package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/fsdevblog/urlmapper/internal/repositories"
)

// Значения по умолчанию.
const (
	DefaultStoreTimeout        = 3 * time.Second
	DefaultCacheTTL            = 5 * time.Minute
	DefaultMaxGenerateAttempts = 5
)

// Options настройки сервисов.
type Options struct {
	StoreTimeout        time.Duration    // Ограничение времени на одно обращение к хранилищу
	CacheTTL            time.Duration    // Время жизни записи в кеше, 0 выключает кеширование
	MaxGenerateAttempts int              // Число попыток подобрать свободный сгенерированный слаг
	Clock               func() time.Time // Источник текущего времени
	Logger              *zap.Logger
}

func defaultOptions() Options {
	return Options{
		StoreTimeout:        DefaultStoreTimeout,
		CacheTTL:            DefaultCacheTTL,
		MaxGenerateAttempts: DefaultMaxGenerateAttempts,
		Clock:               time.Now,
		Logger:              zap.NewNop(),
	}
}

func buildOptions(opts []func(*Options)) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.StoreTimeout <= 0 {
		o.StoreTimeout = DefaultStoreTimeout
	}
	if o.MaxGenerateAttempts <= 0 {
		o.MaxGenerateAttempts = DefaultMaxGenerateAttempts
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// WithClock подменяет источник времени.
func WithClock(clock func() time.Time) func(*Options) {
	return func(o *Options) {
		o.Clock = clock
	}
}

// WithStoreTimeout задает таймаут обращения к хранилищу.
func WithStoreTimeout(d time.Duration) func(*Options) {
	return func(o *Options) {
		o.StoreTimeout = d
	}
}

// WithCacheTTL задает время жизни записей в кеше.
func WithCacheTTL(d time.Duration) func(*Options) {
	return func(o *Options) {
		o.CacheTTL = d
	}
}

// WithMaxGenerateAttempts задает число попыток генерации слага.
func WithMaxGenerateAttempts(n int) func(*Options) {
	return func(o *Options) {
		o.MaxGenerateAttempts = n
	}
}

func WithLogger(l *zap.Logger) func(*Options) {
	return func(o *Options) {
		o.Logger = l
	}
}

// storeCall выполняет обращение к хранилищу с ограничением по времени.
func storeCall[T any](ctx context.Context, timeout time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	sctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return fn(sctx)
}

// storeErr переводит ошибку репозитория в ошибку сервисного слоя.
func storeErr(err error) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrRecordNotFound, err)
	default:
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
}
