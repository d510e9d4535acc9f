package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsdevblog/urlmapper/internal/cache/localcache"
	"github.com/fsdevblog/urlmapper/internal/db"
	"github.com/fsdevblog/urlmapper/internal/models"
	"github.com/fsdevblog/urlmapper/internal/repositories/memstore"
)

// pausingRepo после чтения записи по published_url сообщает об этом в read
// и ждет release. Срабатывает один раз.
type pausingRepo struct {
	MappingRepository
	once    sync.Once
	read    chan struct{}
	release chan struct{}
}

func (r *pausingRepo) GetByPublishedURL(ctx context.Context, publishedURL string) (*models.Mapping, error) {
	m, err := r.MappingRepository.GetByPublishedURL(ctx, publishedURL)
	r.once.Do(func() {
		close(r.read)
		<-r.release
	})
	return m, err
}

func TestResolver_StaleFillAfterDelete(t *testing.T) {
	ctx := context.Background()
	repo := &pausingRepo{
		MappingRepository: memstore.NewMappingRepo(db.NewMemStorage()),
		read:              make(chan struct{}),
		release:           make(chan struct{}),
	}
	c := localcache.New()
	svc := NewMappingService(repo, c, nil, WithCacheTTL(time.Minute))
	resolver := NewRedirectResolver(repo, c, WithCacheTTL(time.Minute))

	res, err := svc.Publish(ctx, PublishParams{ActualURL: gofakeit.URL(), PublishedURL: testBase + "/stale"})
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, rErr := resolver.Resolve(ctx, res.Mapping.PublishedURL)
		done <- rErr
	}()

	// Resolve прочитал запись и еще не положил ее в кеш.
	<-repo.read
	require.NoError(t, svc.Delete(ctx, res.Mapping.ID))
	close(repo.release)
	require.NoError(t, <-done)

	_, err = resolver.Resolve(ctx, res.Mapping.PublishedURL)
	require.ErrorIs(t, err, ErrRecordNotFound)
}

func TestMappingService_RepublishAfterDelete(t *testing.T) {
	ctx := context.Background()
	svcs := newInMemoryServices(t, &clock{now: time.Now()})
	published := testBase + "/again"

	first, err := svcs.MappingService.Publish(ctx, PublishParams{ActualURL: "https://example.com/first", PublishedURL: published})
	require.NoError(t, err)
	_, err = svcs.Resolver.Resolve(ctx, published)
	require.NoError(t, err)
	require.NoError(t, svcs.MappingService.Delete(ctx, first.Mapping.ID))

	_, err = svcs.MappingService.Publish(ctx, PublishParams{ActualURL: "https://example.com/second", PublishedURL: published})
	require.NoError(t, err)

	got, err := svcs.Resolver.Resolve(ctx, published)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/second", got.ActualURL)
}

func TestMappingService_ConcurrentPublishSameSlug(t *testing.T) {
	const workers = 16

	cases := []struct {
		name  string
		sType ServiceType
		conn  func(t *testing.T) any
	}{
		{
			name:  "memory",
			sType: ServiceTypeInMemory,
			conn:  func(*testing.T) any { return db.NewMemStorage() },
		},
		{
			name:  "sqlite",
			sType: ServiceTypeSQLite,
			conn: func(t *testing.T) any {
				conn, err := db.NewSQLite(filepath.Join(t.TempDir(), "race.db"), logrus.New())
				require.NoError(t, err)
				t.Cleanup(func() { _ = conn.Close() })
				return conn
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			svcs, err := Factory(tc.conn(t), tc.sType, FactoryParams{Cache: localcache.New()})
			require.NoError(t, err)

			slug := "race0001"
			errs := make([]error, workers)
			var wg sync.WaitGroup
			start := make(chan struct{})
			for i := range workers {
				wg.Add(1)
				go func() {
					defer wg.Done()
					<-start
					_, errs[i] = svcs.MappingService.Publish(ctx, PublishParams{
						ActualURL:    gofakeit.URL(),
						PublishedURL: fmt.Sprintf("%s/w%d", testBase, i),
						CustomSlug:   &slug,
					})
				}()
			}
			close(start)
			wg.Wait()

			var ok, conflicts int
			for _, e := range errs {
				var cErr *ConflictError
				switch {
				case e == nil:
					ok++
				case errors.As(e, &cErr):
					conflicts++
				default:
					t.Errorf("unexpected error: %v", e)
				}
			}
			assert.Equal(t, 1, ok)
			assert.Equal(t, workers-1, conflicts)

			all, err := svcs.MappingService.List(ctx)
			require.NoError(t, err)
			assert.Len(t, all, 1)
		})
	}
}
