//go:build integration

package pg

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/fsdevblog/urlmapper/internal/db"
	"github.com/fsdevblog/urlmapper/internal/repositories/repotest"
)

func TestMappingRepo(t *testing.T) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgContainer.Terminate(ctx) })

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := db.NewPostgresConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, db.MigratePostgres(pool))
	// повторный запуск миграций ничего не меняет
	require.NoError(t, db.MigratePostgres(pool))

	suite.Run(t, &repotest.MappingRepoSuite{
		NewRepo: func() repotest.MappingRepository {
			_, truncErr := pool.Exec(ctx, "TRUNCATE TABLE url_shortener RESTART IDENTITY")
			require.NoError(t, truncErr)
			return NewMappingRepo(pool)
		},
	})
}
