package services

import (
	"context"
	"fmt"
)

// Snapshotter хранилище, которое умеет сохранять и восстанавливать снимок в файле.
type Snapshotter interface {
	SaveFile(ctx context.Context, path string) error
	LoadFile(ctx context.Context, path string) error
}

// BackupService сохраняет in-memory хранилище между запусками.
// Для SQL хранилищ store равен nil и методы ничего не делают.
type BackupService struct {
	store Snapshotter
}

func NewBackupService(store Snapshotter) *BackupService {
	return &BackupService{store: store}
}

// Enabled сообщает, есть ли что сохранять.
func (s *BackupService) Enabled() bool {
	return s.store != nil
}

func (s *BackupService) Backup(ctx context.Context, path string) error {
	if s.store == nil || path == "" {
		return nil
	}
	if err := s.store.SaveFile(ctx, path); err != nil {
		return fmt.Errorf("backup to %s: %w", path, err)
	}
	return nil
}

func (s *BackupService) RestoreBackup(ctx context.Context, path string) error {
	if s.store == nil || path == "" {
		return nil
	}
	if err := s.store.LoadFile(ctx, path); err != nil {
		return fmt.Errorf("restore from %s: %w", path, err)
	}
	return nil
}
