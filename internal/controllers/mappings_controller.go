package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/urlmapper/internal/services"
)

// MappingsController обрабатывает публикацию, перечисление и удаление коротких ссылок.
type MappingsController struct {
	store   MappingStore
	baseURL string
}

// NewMappingsController создает контроллер.
//
// Параметры:
//   - store: сервис соответствий ссылок
//   - baseURL: базовый адрес коротких ссылок, может быть пустым
//
// Возвращает:
//   - *MappingsController: новый экземпляр контроллера
func NewMappingsController(store MappingStore, baseURL string) *MappingsController {
	return &MappingsController{store: store, baseURL: baseURL}
}

// List обрабатывает GET /url-shortener.
//
// В случае успеха возвращает:
//   - HTTP 200 OK с {"data": [...]} в порядке возрастания id
//
// В случае ошибки возвращает:
//   - HTTP 500 Internal Server Error
func (c *MappingsController) List(ctx *gin.Context) {
	reqCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	all, err := c.store.List(reqCtx)
	if err != nil {
		_ = ctx.Error(fmt.Errorf("list mappings: %w", err))
		ctx.JSON(http.StatusInternalServerError, errorResponse{Error: MsgFetchFailed})
		return
	}
	ctx.JSON(http.StatusOK, listResponse{Data: all})
}

// Create обрабатывает POST /url-shortener.
//
// Тело запроса: {actual_url, published_url, custom_slug?, expiration_date?}.
//
// В случае успеха возвращает:
//   - HTTP 201 Created с {success, data, short_url}; short_url равен null без пользовательского слага
//
// В случае ошибки возвращает:
//   - HTTP 400 Bad Request при некорректных данных
//   - HTTP 409 Conflict с existing_entry, если слаг занят
//   - HTTP 500 Internal Server Error
func (c *MappingsController) Create(ctx *gin.Context) {
	var req createMappingRequest
	if err := decodeBody(ctx.Request.Body, &req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse{Error: MsgInvalidInput, Details: err.Error()})
		return
	}

	reqCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	res, err := c.store.Publish(reqCtx, services.PublishParams{
		ActualURL:      req.ActualURL,
		PublishedURL:   req.PublishedURL,
		CustomSlug:     req.CustomSlug,
		ExpirationDate: req.ExpirationDate.Time,
		ShortURLBase:   requestBase(ctx.Request, c.baseURL),
	})
	if err != nil {
		c.publishError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, createMappingResponse{
		Success:  true,
		Data:     res.Mapping,
		ShortURL: res.ShortURL,
	})
}

// Shorten обрабатывает POST /api/shorten. Короткую ссылку строит сервер от своего базового адреса.
//
// Тело запроса: {url, custom_slug?, expiration_date?}.
//
// Коды ответов совпадают с Create, short_url всегда заполнен.
func (c *MappingsController) Shorten(ctx *gin.Context) {
	var req shortenRequest
	if err := decodeBody(ctx.Request.Body, &req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse{Error: MsgInvalidInput, Details: err.Error()})
		return
	}

	reqCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	res, err := c.store.Shorten(reqCtx, services.ShortenParams{
		ActualURL:      req.URL,
		CustomSlug:     req.CustomSlug,
		ExpirationDate: req.ExpirationDate.Time,
		Base:           requestBase(ctx.Request, c.baseURL),
	})
	if err != nil {
		c.publishError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, createMappingResponse{
		Success:  true,
		Data:     res.Mapping,
		ShortURL: res.ShortURL,
	})
}

func (c *MappingsController) publishError(ctx *gin.Context, err error) {
	var vErr *services.ValidationError
	var cErr *services.ConflictError
	switch {
	case errors.As(err, &vErr):
		ctx.JSON(http.StatusBadRequest, errorResponse{Error: MsgInvalidInput, Details: vErr.Fields})
	case errors.As(err, &cErr):
		ctx.JSON(http.StatusConflict, conflictResponse{Error: MsgSlugExists, ExistingEntry: cErr.Existing})
	default:
		_ = ctx.Error(fmt.Errorf("publish mapping: %w", err))
		ctx.JSON(http.StatusInternalServerError, errorResponse{Error: MsgInternal})
	}
}

// Delete обрабатывает DELETE /url-shortener/:id.
//
// В случае успеха возвращает:
//   - HTTP 200 OK с {"message": "..."}
//
// В случае ошибки возвращает:
//   - HTTP 400 Bad Request для нечислового id
//   - HTTP 404 Not Found, если записи нет
//   - HTTP 500 Internal Server Error
func (c *MappingsController) Delete(ctx *gin.Context) {
	rawID := ctx.Param("id")
	id, parseErr := strconv.ParseInt(rawID, 10, 64)
	if parseErr != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse{Error: MsgInvalidID})
		return
	}

	reqCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	if err := c.store.Delete(reqCtx, id); err != nil {
		if errors.Is(err, services.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse{Error: MsgRecordNotFound})
			return
		}
		_ = ctx.Error(fmt.Errorf("delete mapping %d: %w", id, err))
		ctx.JSON(http.StatusInternalServerError, errorResponse{Error: MsgInternal})
		return
	}

	ctx.JSON(http.StatusOK, messageResponse{
		Message: fmt.Sprintf("URL shortener with ID %d deleted successfully", id),
	})
}
