package memstore

import (
	"context"
	"fmt"

	"github.com/fsdevblog/urlmapper/internal/db"
	"github.com/fsdevblog/urlmapper/internal/db/memory"
	"github.com/fsdevblog/urlmapper/internal/models"
	"github.com/fsdevblog/urlmapper/internal/repositories"
)

// MappingRepo репозиторий соответствий ссылок в памяти.
type MappingRepo struct {
	s *db.MemoryStorage
}

// NewMappingRepo создает новый экземпляр репозитория.
//
// Параметры:
//   - store: экземпляр хранилища в памяти
//
// Возвращает:
//   - *MappingRepo: инициализированный репозиторий
func NewMappingRepo(store *db.MemoryStorage) *MappingRepo {
	return &MappingRepo{
		s: store,
	}
}

func uniqueKeys(m *models.Mapping) memory.UniqueKeys {
	keys := memory.UniqueKeys{repositories.IndexPublishedURL: m.PublishedURL}
	if m.CustomSlug != nil {
		keys[repositories.IndexCustomSlug] = *m.CustomSlug
	}
	return keys
}

func setID(m *models.Mapping, id int64) {
	m.ID = id
}

// Create сохраняет новую запись и проставляет ей идентификатор.
//
// Параметры:
//   - ctx: контекст выполнения
//   - m: сохраняемая запись
//
// Возвращает:
//   - error: repositories.ErrDuplicateKey если занят слаг или published_url
func (r *MappingRepo) Create(ctx context.Context, m *models.Mapping) error {
	if _, err := memory.Insert[models.Mapping](ctx, r.s.MStorage, m, uniqueKeys(m), setID); err != nil {
		return fmt.Errorf("failed to create record: %w", convertErrorType(err))
	}
	return nil
}

// List возвращает все записи в порядке возрастания id.
func (r *MappingRepo) List(ctx context.Context) ([]models.Mapping, error) {
	all, err := memory.GetAll[models.Mapping](ctx, r.s.MStorage)
	if err != nil {
		return nil, fmt.Errorf("failed to get all records: %w", convertErrorType(err))
	}
	return all, nil
}

func (r *MappingRepo) GetByID(ctx context.Context, id int64) (*models.Mapping, error) {
	m, err := memory.Get[models.Mapping](ctx, id, r.s.MStorage)
	if err != nil {
		return nil, fmt.Errorf("failed to get record by id %d: %w", id, convertErrorType(err))
	}
	return m, nil
}

func (r *MappingRepo) GetByCustomSlug(ctx context.Context, slug string) (*models.Mapping, error) {
	m, err := memory.Lookup[models.Mapping](ctx, repositories.IndexCustomSlug, slug, r.s.MStorage)
	if err != nil {
		return nil, fmt.Errorf("failed to get record by custom slug %s: %w", slug, convertErrorType(err))
	}
	return m, nil
}

func (r *MappingRepo) GetByPublishedURL(ctx context.Context, publishedURL string) (*models.Mapping, error) {
	m, err := memory.Lookup[models.Mapping](ctx, repositories.IndexPublishedURL, publishedURL, r.s.MStorage)
	if err != nil {
		return nil, fmt.Errorf("failed to get record by published url %s: %w", publishedURL, convertErrorType(err))
	}
	return m, nil
}

// Delete удаляет запись и возвращает ее.
func (r *MappingRepo) Delete(ctx context.Context, id int64) (*models.Mapping, error) {
	m, err := memory.Delete[models.Mapping](ctx, id, r.s.MStorage)
	if err != nil {
		return nil, fmt.Errorf("failed to delete record %d: %w", id, convertErrorType(err))
	}
	return m, nil
}
