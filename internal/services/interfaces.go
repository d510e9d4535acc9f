package services

import (
	"context"

	"github.com/fsdevblog/urlmapper/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock.go -package=mocks

// MappingRepository описывает хранилище соответствий ссылок.
type MappingRepository interface {
	// Create сохраняет запись и проставляет ей идентификатор.
	// При нарушении уникальности возвращает repositories.ErrDuplicateKey.
	Create(ctx context.Context, m *models.Mapping) error
	// List возвращает все записи в порядке возрастания id.
	List(ctx context.Context) ([]models.Mapping, error)
	GetByID(ctx context.Context, id int64) (*models.Mapping, error)
	GetByCustomSlug(ctx context.Context, slug string) (*models.Mapping, error)
	// GetByPublishedURL ищет запись по точному совпадению опубликованной ссылки.
	GetByPublishedURL(ctx context.Context, publishedURL string) (*models.Mapping, error)
	// Delete удаляет запись и возвращает ее.
	Delete(ctx context.Context, id int64) (*models.Mapping, error)
}

// SlugGenerator генерирует случайные слаги.
type SlugGenerator interface {
	Generate() string
}
