// Package memstore хранит соответствия ссылок в памяти процесса поверх db.MemoryStorage.
//
// Записи индексируются по published_url и непустому custom_slug, идентификаторы выдаются
// монотонно и не переиспользуются после удаления. Ошибки хранилища приводятся
// к ошибкам пакета repositories функцией convertErrorType.
package memstore
