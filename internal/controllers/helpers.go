package controllers

import (
	"net/http"
	"time"

	"github.com/fsdevblog/urlmapper/internal/models"
)

const (
	DefaultRequestTimeout = 3 * time.Second
)

// requestBase возвращает базовый адрес коротких ссылок: настроенный BASE_URL или Scheme://Host запроса.
func requestBase(r *http.Request, baseURL string) string {
	if baseURL != "" {
		return baseURL
	}
	var scheme = "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

// publishedURLFor восстанавливает опубликованную ссылку по слагу из запроса.
func publishedURLFor(r *http.Request, baseURL, slug string) string {
	return models.JoinPublishedURL(requestBase(r, baseURL), slug)
}
