package models

import (
	"strings"
	"time"
)

// CustomSlugLength длина пользовательского слага.
const CustomSlugLength = 8

// Mapping структура модели хранения соответствия короткой и исходной ссылки.
type Mapping struct {
	ID             int64      `gorm:"primaryKey"                                                        json:"id"`
	ActualURL      string     `gorm:"size:2048;not null"                                                json:"actual_url"`
	PublishedURL   string     `gorm:"size:2048;not null;uniqueIndex:idx_url_shortener_published_url" json:"published_url"`
	CustomSlug     *string    `gorm:"size:8;uniqueIndex:idx_url_shortener_custom_slug"               json:"custom_slug"`
	ExpirationDate *time.Time `json:"expiration_date"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// TableName имя таблицы для gorm.
func (Mapping) TableName() string {
	return "url_shortener"
}

// IsExpired сообщает, истек ли срок действия ссылки на момент now.
// Запись без даты истечения не истекает никогда.
func (m *Mapping) IsExpired(now time.Time) bool {
	if m.ExpirationDate == nil {
		return false
	}
	return m.ExpirationDate.Before(now)
}

// JoinPublishedURL склеивает базовый адрес и слаг в короткую ссылку.
func JoinPublishedURL(base, slug string) string {
	return strings.TrimRight(base, "/") + "/" + slug
}
