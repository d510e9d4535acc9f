package services

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/urlmapper/internal/cache"
	"github.com/fsdevblog/urlmapper/internal/db"
	"github.com/fsdevblog/urlmapper/internal/repositories/memstore"
	"github.com/fsdevblog/urlmapper/internal/repositories/pg"
	"github.com/fsdevblog/urlmapper/internal/repositories/sql"
	"github.com/fsdevblog/urlmapper/internal/slug"
)

type ServiceType string

const (
	ServiceTypePostgres ServiceType = "postgres"
	ServiceTypeSQLite   ServiceType = "sqlite"
	ServiceTypeInMemory ServiceType = "inMemory"
)

// Services сервисный слой приложения.
type Services struct {
	MappingService *MappingService
	Resolver       *RedirectResolver
	PingService    *PingService
	BackupService  *BackupService
}

// FactoryParams зависимости сервисного слоя.
type FactoryParams struct {
	Cache  cache.Cache
	Slugs  SlugGenerator
	Logger *logrus.Logger // логгер SQL репозитория
	Opts   []func(*Options)
}

// Factory собирает сервисы поверх подключения, созданного db.NewConnectionFactory.
//
// Параметры:
//   - conn: подключение к хранилищу
//   - sType: тип хранилища, должен соответствовать типу conn
//   - params: зависимости сервисов
//
// Возвращает:
//   - *Services: сервисный слой
//   - error: ошибка несоответствия типа подключения
func Factory(conn any, sType ServiceType, params FactoryParams) (*Services, error) {
	if params.Logger == nil {
		params.Logger = logrus.New()
	}
	if params.Slugs == nil {
		params.Slugs = slug.New()
	}

	switch sType {
	case ServiceTypePostgres:
		pool, ok := conn.(*pgxpool.Pool)
		if !ok {
			return nil, errors.New("invalid connection type. expected *pgxpool.Pool")
		}
		return build(pg.NewMappingRepo(pool), pool, nil, params), nil
	case ServiceTypeSQLite:
		sqlite, ok := conn.(*db.SQLite)
		if !ok {
			return nil, errors.New("invalid connection type. expected *db.SQLite")
		}
		return build(sql.NewMappingRepo(sqlite.DB, params.Logger), sqlite, nil, params), nil
	case ServiceTypeInMemory:
		store, ok := conn.(*db.MemoryStorage)
		if !ok {
			return nil, errors.New("invalid connection type. expected *db.MemoryStorage")
		}
		return build(memstore.NewMappingRepo(store), store, store, params), nil
	default:
		return nil, fmt.Errorf("unknown service type: %s", sType)
	}
}

func build(repo MappingRepository, pinger Pinger, snap Snapshotter, params FactoryParams) *Services {
	return &Services{
		MappingService: NewMappingService(repo, params.Cache, params.Slugs, params.Opts...),
		Resolver:       NewRedirectResolver(repo, params.Cache, params.Opts...),
		PingService:    NewPingService(pinger, params.Opts...),
		BackupService:  NewBackupService(snap),
	}
}
