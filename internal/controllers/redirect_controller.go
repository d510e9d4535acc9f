package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/urlmapper/internal/services"
)

// RedirectController перенаправляет с короткой ссылки на исходную.
type RedirectController struct {
	resolver Resolver
	baseURL  string
}

func NewRedirectController(resolver Resolver, baseURL string) *RedirectController {
	return &RedirectController{resolver: resolver, baseURL: baseURL}
}

// Redirect обрабатывает GET /:slug.
// Опубликованная ссылка восстанавливается как BASE_URL/slug или Scheme://Host/slug запроса.
//
// В случае успеха возвращает:
//   - HTTP 301 Moved Permanently с Location на исходную ссылку
//
// В случае ошибки возвращает:
//   - HTTP 404 Not Found, если ссылка неизвестна
//   - HTTP 410 Gone, если срок действия истек
//   - HTTP 500 Internal Server Error
func (c *RedirectController) Redirect(ctx *gin.Context) {
	publishedURL := publishedURLFor(ctx.Request, c.baseURL, ctx.Param("slug"))

	reqCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	m, err := c.resolver.Resolve(reqCtx, publishedURL)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, errorResponse{Error: MsgShortURLNotFound})
		case errors.Is(err, services.ErrExpired):
			ctx.JSON(http.StatusGone, errorResponse{Error: MsgShortURLExpired})
		default:
			_ = ctx.Error(fmt.Errorf("resolve %s: %w", publishedURL, err))
			ctx.JSON(http.StatusInternalServerError, errorResponse{Error: MsgRedirectFailed})
		}
		return
	}

	ctx.Redirect(http.StatusMovedPermanently, m.ActualURL)
}
