package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/goccy/go-json"

	"github.com/fsdevblog/urlmapper/internal/models"
)

// decodeBody читает из r ровно одно JSON значение. Любые данные после него считаются ошибкой.
func decodeBody(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	if err := dec.Decode(v); err != nil {
		return err //nolint:wrapcheck
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}

// expirationLayouts допустимые форматы даты истечения. Значения без часового пояса считаются UTC.
var expirationLayouts = []string{ //nolint:gochecknoglobals
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateOnly,
}

// ExpirationDate дата истечения из тела запроса. null и пустая строка означают отсутствие даты.
type ExpirationDate struct {
	Time *time.Time
}

func (e *ExpirationDate) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		e.Time = nil
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("expiration_date must be a string: %w", err)
	}
	if raw == "" {
		e.Time = nil
		return nil
	}
	for _, layout := range expirationLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			utc := t.UTC()
			e.Time = &utc
			return nil
		}
	}
	return fmt.Errorf("expiration_date `%s` has unsupported format", raw)
}

// createMappingRequest тело POST /url-shortener.
type createMappingRequest struct {
	ActualURL      string         `json:"actual_url"`
	PublishedURL   string         `json:"published_url"`
	CustomSlug     *string        `json:"custom_slug"`
	ExpirationDate ExpirationDate `json:"expiration_date"`
}

// shortenRequest тело POST /api/shorten.
type shortenRequest struct {
	URL            string         `json:"url"`
	CustomSlug     *string        `json:"custom_slug"`
	ExpirationDate ExpirationDate `json:"expiration_date"`
}

// createMappingResponse ответ на успешную публикацию.
type createMappingResponse struct {
	Success  bool            `json:"success"`
	Data     *models.Mapping `json:"data"`
	ShortURL *string         `json:"short_url"`
}

// conflictResponse ответ при занятом слаге.
type conflictResponse struct {
	Error         string          `json:"error"`
	ExistingEntry *models.Mapping `json:"existing_entry"`
}

type listResponse struct {
	Data []models.Mapping `json:"data"`
}

type messageResponse struct {
	Message string `json:"message"`
}
