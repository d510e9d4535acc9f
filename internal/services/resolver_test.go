package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsdevblog/urlmapper/internal/cache"
	"github.com/fsdevblog/urlmapper/internal/models"
	"github.com/fsdevblog/urlmapper/internal/repositories"
	"github.com/fsdevblog/urlmapper/internal/services/mocks"
)

func TestRedirectResolver_CacheMissFillsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMappingRepository(ctrl)
	c := mocks.NewMockCache(ctrl)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	exp := now.Add(time.Minute)
	r := NewRedirectResolver(repo, c, WithClock(fixedClock(now)), WithCacheTTL(time.Hour))

	published := testBase + "/abcd1234"
	m := &models.Mapping{ID: 1, ActualURL: "https://target.io", PublishedURL: published, ExpirationDate: &exp}

	gomock.InOrder(
		c.EXPECT().Get(gomock.Any(), published).Return(nil, cache.ErrMiss),
		repo.EXPECT().GetByPublishedURL(gomock.Any(), published).Return(m, nil),
		c.EXPECT().Add(gomock.Any(), m, time.Minute).Return(nil),
	)

	got, err := r.Resolve(context.Background(), published)
	require.NoError(t, err)
	assert.Equal(t, "https://target.io", got.ActualURL)
}

func TestRedirectResolver_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMappingRepository(ctrl)
	c := mocks.NewMockCache(ctrl)
	r := NewRedirectResolver(repo, c)

	published := testBase + "/hit00001"
	c.EXPECT().Get(gomock.Any(), published).Return(&models.Mapping{ActualURL: "https://x.io"}, nil)

	got, err := r.Resolve(context.Background(), published)
	require.NoError(t, err)
	assert.Equal(t, "https://x.io", got.ActualURL)
}

func TestRedirectResolver_ExpiredCacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMappingRepository(ctrl)
	c := mocks.NewMockCache(ctrl)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	past := now.Add(-time.Second)
	r := NewRedirectResolver(repo, c, WithClock(fixedClock(now)))

	published := testBase + "/old00001"
	c.EXPECT().Get(gomock.Any(), published).Return(&models.Mapping{ExpirationDate: &past}, nil)

	_, err := r.Resolve(context.Background(), published)
	require.ErrorIs(t, err, ErrExpired)
}

func TestRedirectResolver_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMappingRepository(ctrl)
	c := mocks.NewMockCache(ctrl)
	r := NewRedirectResolver(repo, c)

	c.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down")).Times(2)
	repo.EXPECT().GetByPublishedURL(gomock.Any(), testBase+"/none0001").Return(nil, repositories.ErrNotFound)
	repo.EXPECT().GetByPublishedURL(gomock.Any(), testBase+"/fail0001").Return(nil, repositories.ErrUnknown)

	_, err := r.Resolve(context.Background(), testBase+"/none0001")
	require.ErrorIs(t, err, ErrRecordNotFound)

	_, err = r.Resolve(context.Background(), testBase+"/fail0001")
	require.ErrorIs(t, err, ErrStoreUnavailable)
}
