package services

import (
	"errors"
	"strings"

	"github.com/fsdevblog/urlmapper/internal/models"
	"github.com/fsdevblog/urlmapper/internal/validation"
)

var (
	ErrValidation       = errors.New("[service]: validation failed")
	ErrConflict         = errors.New("[service]: custom slug already exists")
	ErrRecordNotFound   = errors.New("[service]: record not found")
	ErrExpired          = errors.New("[service]: short url has expired")
	ErrStoreUnavailable = errors.New("[service]: store unavailable")
)

// ValidationError ошибка входных данных с перечнем полей.
type ValidationError struct {
	Fields []validation.FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Error())
	}
	return ErrValidation.Error() + ": " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ConflictError занятый слаг или опубликованная ссылка. Existing содержит существующую запись,
// если ее удалось прочитать.
type ConflictError struct {
	Existing *models.Mapping
}

func (e *ConflictError) Error() string {
	if e.Existing == nil {
		return ErrConflict.Error()
	}
	return ErrConflict.Error() + ": " + e.Existing.PublishedURL
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
