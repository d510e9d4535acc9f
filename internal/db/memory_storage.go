package db

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsdevblog/urlmapper/internal/db/memory"
)

const backupFilePerm = 0o644

type MemoryStorage struct {
	*memory.MStorage
}

func NewMemStorage() *MemoryStorage {
	return &MemoryStorage{
		MStorage: memory.NewMemStorage(),
	}
}

// Ping in-memory хранилище всегда доступно.
func (s *MemoryStorage) Ping(ctx context.Context) error {
	return ctx.Err() //nolint:wrapcheck
}

// SaveFile сохраняет снимок хранилища в файл. Запись идет во временный файл,
// который затем переименовывается, так что прерванная запись не портит прошлый снимок.
//
// Параметры:
//   - ctx: контекст выполнения
//   - path: путь к файлу снимка
//
// Возвращает:
//   - error: ошибка сохранения
func (s *MemoryStorage) SaveFile(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if dumpErr := s.Dump(tmp); dumpErr != nil {
		_ = tmp.Close()
		return fmt.Errorf("dump storage: %w", dumpErr)
	}
	if closeErr := tmp.Close(); closeErr != nil {
		return fmt.Errorf("close temp file: %w", closeErr)
	}
	if chmodErr := os.Chmod(tmp.Name(), backupFilePerm); chmodErr != nil {
		return fmt.Errorf("chmod temp file: %w", chmodErr)
	}
	if renameErr := os.Rename(tmp.Name(), path); renameErr != nil {
		return fmt.Errorf("rename temp file: %w", renameErr)
	}
	return nil
}

// LoadFile восстанавливает хранилище из файла снимка. Отсутствие файла ошибкой не считается.
//
// Параметры:
//   - ctx: контекст выполнения
//   - path: путь к файлу снимка
//
// Возвращает:
//   - error: ошибка восстановления
func (s *MemoryStorage) LoadFile(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open backup file: %w", err)
	}
	defer f.Close()

	info, statErr := f.Stat()
	if statErr != nil {
		return fmt.Errorf("stat backup file: %w", statErr)
	}
	if info.Size() == 0 {
		return nil
	}

	if restoreErr := s.Restore(f); restoreErr != nil {
		return fmt.Errorf("restore storage: %w", restoreErr)
	}
	return nil
}
