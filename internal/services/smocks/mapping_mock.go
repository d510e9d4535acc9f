package smocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fsdevblog/urlmapper/internal/models"
	"github.com/fsdevblog/urlmapper/internal/services"
)

// MappingMock testify мок сервиса соответствий ссылок.
type MappingMock struct {
	mock.Mock
}

func (m *MappingMock) Publish(ctx context.Context, p services.PublishParams) (*services.PublishResult, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck
	}
	return args.Get(0).(*services.PublishResult), args.Error(1) //nolint:wrapcheck,errcheck,forcetypeassert
}

func (m *MappingMock) Shorten(ctx context.Context, p services.ShortenParams) (*services.PublishResult, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck
	}
	return args.Get(0).(*services.PublishResult), args.Error(1) //nolint:wrapcheck,errcheck,forcetypeassert
}

func (m *MappingMock) List(ctx context.Context) ([]models.Mapping, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck
	}
	return args.Get(0).([]models.Mapping), args.Error(1) //nolint:wrapcheck,errcheck,forcetypeassert
}

func (m *MappingMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0) //nolint:wrapcheck
}

// ResolverMock testify мок сервиса разрешения ссылок.
type ResolverMock struct {
	mock.Mock
}

func (r *ResolverMock) Resolve(ctx context.Context, publishedURL string) (*models.Mapping, error) {
	args := r.Called(ctx, publishedURL)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck
	}
	return args.Get(0).(*models.Mapping), args.Error(1) //nolint:wrapcheck,errcheck,forcetypeassert
}

// PingMock testify мок проверки соединения.
type PingMock struct {
	mock.Mock
}

func (p *PingMock) CheckConnection(ctx context.Context) error {
	args := p.Called(ctx)
	return args.Error(0) //nolint:wrapcheck
}
