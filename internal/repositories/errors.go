package repositories

import "errors"

var (
	ErrNotFound     = errors.New("[repository]: record not found")
	ErrDuplicateKey = errors.New("[repository]: duplicate key")
	ErrUnavailable  = errors.New("[repository]: storage unavailable")
	ErrUnknown      = errors.New("[repository]: unknown error")
)

// Имена уникальных индексов таблицы url_shortener.
const (
	IndexPublishedURL = "idx_url_shortener_published_url"
	IndexCustomSlug   = "idx_url_shortener_custom_slug"
)
