// Package pg предоставляет реализацию репозитория соответствий ссылок для PostgreSQL (pgx).
//
// Все методы репозитория преобразуют ошибки PostgreSQL в общие ошибки уровня репозитория
// с помощью convertErrType:
//   - uniqueViolationCode (23505) -> repositories.ErrDuplicateKey
//   - pgx.ErrNoRows -> repositories.ErrNotFound
//   - истекший контекст -> repositories.ErrUnavailable
//   - другие ошибки -> repositories.ErrUnknown
package pg
