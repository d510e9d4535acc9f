// Package validation проверяет входные данные сервиса.
//
// Поверх go-playground/validator регистрируются правило absurl,
// которое принимает только абсолютные ссылки (со схемой и хостом),
// и правило slug для сегментов пути из латинских букв, цифр, '_' и '-'.
package validation

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError описывает ошибку валидации отдельного поля.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error реализует интерфейс error.
func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	validate = newValidator() //nolint:gochecknoglobals

	slugPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`) //nolint:gochecknoglobals
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// В ошибках используем имена полей из json тегов.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	if err := v.RegisterValidation("absurl", func(fl validator.FieldLevel) bool {
		return IsAbsoluteURL(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return IsSlug(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// IsSlug сообщает, можно ли подставить строку в путь без экранирования.
func IsSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// IsAbsoluteURL возвращает true, если строка разбирается как URL с непустыми схемой и хостом.
// Пустые, относительные и некорректные строки не проходят проверку.
func IsAbsoluteURL(raw string) bool {
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// Struct валидирует структуру по тегам validate.
//
// Параметры:
//   - v: структура или указатель на структуру
//
// Возвращает:
//   - []FieldError: список ошибок, пустой если структура валидна
func Struct(v any) []FieldError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	result := make([]FieldError, 0, len(vErrs))
	for _, fe := range vErrs {
		result = append(result, FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return result
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "absurl":
		return "must be an absolute URL"
	case "slug":
		return "may contain only latin letters, digits, '_' and '-'"
	case "len":
		return fmt.Sprintf("must be exactly %s characters long", fe.Param())
	default:
		return "is invalid"
	}
}
