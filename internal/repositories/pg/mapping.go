package pg

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fsdevblog/urlmapper/internal/models"
)

const mappingColumns = "id, actual_url, published_url, custom_slug, expiration_date, created_at, updated_at"

// MappingRepo репозиторий соответствий ссылок в PostgreSQL.
type MappingRepo struct {
	conn *pgxpool.Pool
}

// NewMappingRepo создает репозиторий поверх пула подключений.
//
// Параметры:
//   - conn: пул подключений к PostgreSQL
//
// Возвращает:
//   - *MappingRepo: инициализированный репозиторий
func NewMappingRepo(conn *pgxpool.Pool) *MappingRepo {
	return &MappingRepo{conn: conn}
}

// Create вставляет запись. Идентификатор и метки времени возвращаются базой.
// Нарушение уникальности слага или published_url дает repositories.ErrDuplicateKey.
func (r *MappingRepo) Create(ctx context.Context, m *models.Mapping) error {
	query := `INSERT INTO url_shortener (actual_url, published_url, custom_slug, expiration_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	row := r.conn.QueryRow(ctx, query,
		m.ActualURL, m.PublishedURL, m.CustomSlug, m.ExpirationDate, m.CreatedAt, m.UpdatedAt)
	if err := row.Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return fmt.Errorf("failed to create record: %w", convertErrType(err))
	}
	return nil
}

// List возвращает все записи в порядке возрастания id.
func (r *MappingRepo) List(ctx context.Context) ([]models.Mapping, error) {
	rows, err := r.conn.Query(ctx, "SELECT "+mappingColumns+" FROM url_shortener ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to get all records: %w", convertErrType(err))
	}
	result, err := pgx.CollectRows(rows, scanMapping)
	if err != nil {
		return nil, fmt.Errorf("failed to collect records: %w", convertErrType(err))
	}
	if result == nil {
		result = make([]models.Mapping, 0)
	}
	return result, nil
}

func (r *MappingRepo) GetByID(ctx context.Context, id int64) (*models.Mapping, error) {
	return r.queryOne(ctx, "SELECT "+mappingColumns+" FROM url_shortener WHERE id = $1", id)
}

func (r *MappingRepo) GetByCustomSlug(ctx context.Context, slug string) (*models.Mapping, error) {
	return r.queryOne(ctx, "SELECT "+mappingColumns+" FROM url_shortener WHERE custom_slug = $1", slug)
}

func (r *MappingRepo) GetByPublishedURL(ctx context.Context, publishedURL string) (*models.Mapping, error) {
	return r.queryOne(ctx, "SELECT "+mappingColumns+" FROM url_shortener WHERE published_url = $1", publishedURL)
}

// Delete удаляет запись и возвращает ее.
func (r *MappingRepo) Delete(ctx context.Context, id int64) (*models.Mapping, error) {
	return r.queryOne(ctx, "DELETE FROM url_shortener WHERE id = $1 RETURNING "+mappingColumns, id)
}

func (r *MappingRepo) queryOne(ctx context.Context, query string, arg any) (*models.Mapping, error) {
	rows, err := r.conn.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("query %v: %w", arg, convertErrType(err))
	}
	m, err := pgx.CollectExactlyOneRow(rows, scanMapping)
	if err != nil {
		return nil, fmt.Errorf("query %v: %w", arg, convertErrType(err))
	}
	return &m, nil
}

func scanMapping(row pgx.CollectableRow) (models.Mapping, error) {
	var m models.Mapping
	err := row.Scan(&m.ID, &m.ActualURL, &m.PublishedURL, &m.CustomSlug, &m.ExpirationDate, &m.CreatedAt, &m.UpdatedAt)
	return m, err //nolint:wrapcheck
}
