package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Параметры пула, если они не заданы в DSN (pool_max_conns и т.п.).
const (
	defaultMaxConns          = 10
	defaultMaxConnIdleTime   = 5 * time.Minute
	defaultHealthCheckPeriod = 30 * time.Second
)

// NewPostgresConnection открывает пул подключений к PostgreSQL и проверяет его запросом ping.
// Значения пула из строки подключения имеют приоритет над значениями по умолчанию.
//
// Параметры:
//   - ctx: контекст выполнения
//   - dsn: строка подключения к базе данных
//
// Возвращает:
//   - *pgxpool.Pool: пул подключений
//   - error: ошибка разбора DSN, создания пула или ping
func NewPostgresConnection(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolConfig, confErr := pgxpool.ParseConfig(dsn)
	if confErr != nil {
		return nil, fmt.Errorf("failed to parse config: %w", confErr)
	}
	applyPoolDefaults(poolConfig, dsn)

	pool, poolErr := pgxpool.NewWithConfig(ctx, poolConfig)
	if poolErr != nil {
		return nil, fmt.Errorf("failed to create pool: %w", poolErr)
	}
	if pingErr := pool.Ping(ctx); pingErr != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping postgres %s@%s: %w",
			poolConfig.ConnConfig.User, poolConfig.ConnConfig.Host, pingErr)
	}
	return pool, nil
}

func applyPoolDefaults(c *pgxpool.Config, dsn string) {
	if !containsParam(dsn, "pool_max_conns") {
		c.MaxConns = defaultMaxConns
	}
	if !containsParam(dsn, "pool_max_conn_idle_time") {
		c.MaxConnIdleTime = defaultMaxConnIdleTime
	}
	if !containsParam(dsn, "pool_health_check_period") {
		c.HealthCheckPeriod = defaultHealthCheckPeriod
	}
}

func containsParam(dsn, name string) bool {
	return strings.Contains(dsn, name+"=")
}
