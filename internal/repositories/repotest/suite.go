// Package repotest содержит общий набор тестов для реализаций репозитория соответствий ссылок.
package repotest

import (
	"context"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/urlmapper/internal/models"
	"github.com/fsdevblog/urlmapper/internal/repositories"
)

// MappingRepository контракт, который проверяет набор.
type MappingRepository interface {
	Create(ctx context.Context, m *models.Mapping) error
	List(ctx context.Context) ([]models.Mapping, error)
	GetByID(ctx context.Context, id int64) (*models.Mapping, error)
	GetByCustomSlug(ctx context.Context, slug string) (*models.Mapping, error)
	GetByPublishedURL(ctx context.Context, publishedURL string) (*models.Mapping, error)
	Delete(ctx context.Context, id int64) (*models.Mapping, error)
}

// MappingRepoSuite набор тестов репозитория. NewRepo вызывается перед каждым тестом
// и должен возвращать репозиторий с пустой таблицей.
type MappingRepoSuite struct {
	suite.Suite
	NewRepo func() MappingRepository
	repo    MappingRepository
}

func (s *MappingRepoSuite) SetupTest() {
	s.repo = s.NewRepo()
}

func newMapping(slug *string) *models.Mapping {
	now := time.Now().UTC().Truncate(time.Second)
	return &models.Mapping{
		ActualURL:    gofakeit.URL(),
		PublishedURL: "https://short.test/" + gofakeit.LetterN(8),
		CustomSlug:   slug,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (s *MappingRepoSuite) TestCreateAndGet() {
	ctx := context.Background()
	slug := gofakeit.LetterN(8)
	exp := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	m := newMapping(&slug)
	m.ExpirationDate = &exp

	s.Require().NoError(s.repo.Create(ctx, m))
	s.Positive(m.ID)

	byID, err := s.repo.GetByID(ctx, m.ID)
	s.Require().NoError(err)
	s.Equal(m.ActualURL, byID.ActualURL)
	s.Equal(m.PublishedURL, byID.PublishedURL)
	s.Require().NotNil(byID.CustomSlug)
	s.Equal(slug, *byID.CustomSlug)
	s.Require().NotNil(byID.ExpirationDate)
	s.True(exp.Equal(*byID.ExpirationDate))

	bySlug, err := s.repo.GetByCustomSlug(ctx, slug)
	s.Require().NoError(err)
	s.Equal(m.ID, bySlug.ID)

	byURL, err := s.repo.GetByPublishedURL(ctx, m.PublishedURL)
	s.Require().NoError(err)
	s.Equal(m.ID, byURL.ID)
}

func (s *MappingRepoSuite) TestCreateWithoutSlug() {
	ctx := context.Background()
	first := newMapping(nil)
	second := newMapping(nil)

	s.Require().NoError(s.repo.Create(ctx, first))
	s.Require().NoError(s.repo.Create(ctx, second))
	s.Greater(second.ID, first.ID)

	got, err := s.repo.GetByID(ctx, first.ID)
	s.Require().NoError(err)
	s.Nil(got.CustomSlug)
	s.Nil(got.ExpirationDate)
}

func (s *MappingRepoSuite) TestDuplicates() {
	ctx := context.Background()
	slug := gofakeit.LetterN(8)
	m := newMapping(&slug)
	s.Require().NoError(s.repo.Create(ctx, m))

	sameSlug := newMapping(&slug)
	s.Require().ErrorIs(s.repo.Create(ctx, sameSlug), repositories.ErrDuplicateKey)

	sameURL := newMapping(nil)
	sameURL.PublishedURL = m.PublishedURL
	s.Require().ErrorIs(s.repo.Create(ctx, sameURL), repositories.ErrDuplicateKey)

	all, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Len(all, 1)
}

func (s *MappingRepoSuite) TestNotFound() {
	ctx := context.Background()

	_, err := s.repo.GetByID(ctx, 424242)
	s.Require().ErrorIs(err, repositories.ErrNotFound)

	_, err = s.repo.GetByCustomSlug(ctx, "nOtThErE")
	s.Require().ErrorIs(err, repositories.ErrNotFound)

	_, err = s.repo.GetByPublishedURL(ctx, "https://short.test/none")
	s.Require().ErrorIs(err, repositories.ErrNotFound)

	_, err = s.repo.Delete(ctx, 424242)
	s.Require().ErrorIs(err, repositories.ErrNotFound)
}

func (s *MappingRepoSuite) TestListOrdered() {
	ctx := context.Background()
	for range 5 {
		s.Require().NoError(s.repo.Create(ctx, newMapping(nil)))
	}

	all, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 5)
	for i := 1; i < len(all); i++ {
		s.Less(all[i-1].ID, all[i].ID)
	}
}

func (s *MappingRepoSuite) TestDelete() {
	ctx := context.Background()
	slug := gofakeit.LetterN(8)
	m := newMapping(&slug)
	s.Require().NoError(s.repo.Create(ctx, m))

	deleted, err := s.repo.Delete(ctx, m.ID)
	s.Require().NoError(err)
	s.Equal(m.PublishedURL, deleted.PublishedURL)

	_, err = s.repo.GetByID(ctx, m.ID)
	s.Require().ErrorIs(err, repositories.ErrNotFound)

	_, err = s.repo.Delete(ctx, m.ID)
	s.Require().ErrorIs(err, repositories.ErrNotFound)

	// слаг освобождается после удаления
	again := newMapping(&slug)
	s.Require().NoError(s.repo.Create(ctx, again))
}

func (s *MappingRepoSuite) TestSlugCaseSensitive() {
	ctx := context.Background()
	lower := "abcdefgh"
	upper := "ABCDEFGH"
	s.Require().NoError(s.repo.Create(ctx, newMapping(&lower)))
	s.Require().NoError(s.repo.Create(ctx, newMapping(&upper)))
}
