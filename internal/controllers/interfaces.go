package controllers

import (
	"context"

	"github.com/fsdevblog/urlmapper/internal/models"
	"github.com/fsdevblog/urlmapper/internal/services"
)

//go:generate mockgen -source=interfaces.go -destination=mocksctrl/store.go -package=mocksctrl

type ConnectionChecker interface {
	CheckConnection(ctx context.Context) error
}

// MappingStore операции над соответствиями ссылок.
type MappingStore interface {
	Publish(ctx context.Context, p services.PublishParams) (*services.PublishResult, error)
	Shorten(ctx context.Context, p services.ShortenParams) (*services.PublishResult, error)
	List(ctx context.Context) ([]models.Mapping, error)
	Delete(ctx context.Context, id int64) error
}

// Resolver находит цель перенаправления по опубликованной ссылке.
type Resolver interface {
	Resolve(ctx context.Context, publishedURL string) (*models.Mapping, error)
}
