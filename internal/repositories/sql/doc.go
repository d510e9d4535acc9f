// Package sql предоставляет реализацию репозитория соответствий ссылок поверх gorm (SQLite).
//
// Все методы репозитория преобразуют ошибки gorm в общие ошибки уровня репозитория
// с помощью ConvertErrorType:
//   - gorm.ErrDuplicatedKey, UNIQUE constraint failed -> repositories.ErrDuplicateKey
//   - gorm.ErrRecordNotFound -> repositories.ErrNotFound
//   - истекший контекст -> repositories.ErrUnavailable
//   - другие ошибки -> repositories.ErrUnknown
package sql
