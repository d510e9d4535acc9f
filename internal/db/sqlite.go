package db

import (
	"context"
	"fmt"

	"github.com/fsdevblog/urlmapper/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SQLite обертка над *gorm.DB с проверкой соединения.
type SQLite struct {
	*gorm.DB
}

// NewSQLite открывает базу SQLite по указанному пути и приводит схему к актуальной.
//
// Параметры:
//   - dbPath: путь к файлу базы (или `:memory:`)
//   - logger: логгер для SQL запросов, может быть nil
//
// Возвращает:
//   - *SQLite: подключение к базе
//   - error: ошибка подключения или миграции
func NewSQLite(dbPath string, logger *logrus.Logger) (*SQLite, error) {
	conn, connErr := connectSQLite(dbPath, logger)
	if connErr != nil {
		return nil, fmt.Errorf("init database error: %w", connErr)
	}
	if migrateErr := migrateSQLite(conn); migrateErr != nil {
		return nil, fmt.Errorf("migrate database error: %w", migrateErr)
	}
	return &SQLite{DB: conn}, nil
}

// Ping проверяет соединение с базой.
func (s *SQLite) Ping(ctx context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	return sqlDB.PingContext(ctx) //nolint:wrapcheck
}

// Close закрывает соединение с базой.
func (s *SQLite) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	return sqlDB.Close() //nolint:wrapcheck
}

func connectSQLite(dbPath string, logger *logrus.Logger) (*gorm.DB, error) {
	conf := &gorm.Config{TranslateError: true}
	if logger != nil {
		conf.Logger = NewGormLogger(logger)
	}
	db, err := gorm.Open(sqlite.Open(dbPath), conf)
	if err != nil {
		return nil, fmt.Errorf("connect database with path %s error: %w", dbPath, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	// SQLite допускает одного писателя, параллельные вставки иначе падают с SQLITE_BUSY.
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

func migrateSQLite(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Mapping{}); err != nil {
		return fmt.Errorf("migrating sql: %w", err)
	}
	return nil
}
