package sql

import (
	"context"

	"github.com/fsdevblog/urlmapper/internal/models"
	"github.com/fsdevblog/urlmapper/internal/repositories"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type MappingRepo struct {
	db     *gorm.DB
	logger *logrus.Entry
}

func NewMappingRepo(db *gorm.DB, logger *logrus.Logger) *MappingRepo {
	return &MappingRepo{
		db:     db,
		logger: logger.WithField("module", "repository/sql/mapping"),
	}
}

func (r *MappingRepo) Create(ctx context.Context, m *models.Mapping) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		converted := ConvertErrorType(err)
		if !errors.Is(converted, repositories.ErrDuplicateKey) {
			r.logger.WithError(err).Errorf("failed to create record %+v", *m)
		}
		return errors.Wrap(converted, "failed to create record")
	}
	return nil
}

func (r *MappingRepo) List(ctx context.Context) ([]models.Mapping, error) {
	var result []models.Mapping
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&result).Error; err != nil {
		r.logger.WithError(err).Error("failed to get all records")
		return nil, errors.Wrap(ConvertErrorType(err), "failed to get all records")
	}
	if result == nil {
		result = make([]models.Mapping, 0)
	}
	return result, nil
}

func (r *MappingRepo) GetByID(ctx context.Context, id int64) (*models.Mapping, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *MappingRepo) GetByCustomSlug(ctx context.Context, slug string) (*models.Mapping, error) {
	return r.first(ctx, "custom_slug = ?", slug)
}

func (r *MappingRepo) GetByPublishedURL(ctx context.Context, publishedURL string) (*models.Mapping, error) {
	return r.first(ctx, "published_url = ?", publishedURL)
}

// Delete удаляет запись и возвращает ее. Чтение и удаление выполняются в одной транзакции.
func (r *MappingRepo) Delete(ctx context.Context, id int64) (*models.Mapping, error) {
	var m models.Mapping
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&m).Error; err != nil {
			return err //nolint:wrapcheck
		}
		return tx.Delete(&models.Mapping{}, id).Error //nolint:wrapcheck
	})
	if err != nil {
		converted := ConvertErrorType(err)
		if !errors.Is(converted, repositories.ErrNotFound) {
			r.logger.WithError(err).Errorf("failed to delete record %d", id)
		}
		return nil, errors.Wrapf(converted, "failed to delete record %d", id)
	}
	return &m, nil
}

func (r *MappingRepo) first(ctx context.Context, query string, arg any) (*models.Mapping, error) {
	var m models.Mapping
	if err := r.db.WithContext(ctx).Where(query, arg).First(&m).Error; err != nil {
		converted := ConvertErrorType(err)
		if !errors.Is(converted, repositories.ErrNotFound) {
			r.logger.WithError(err).Errorf("failed to get record where %s %v", query, arg)
		}
		return nil, errors.Wrapf(converted, "failed to get record where %s %v", query, arg)
	}
	return &m, nil
}
