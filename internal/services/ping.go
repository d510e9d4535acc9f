package services

import (
	"context"
	"fmt"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// PingService проверяет доступность хранилища.
type PingService struct {
	conn Pinger
	opts Options
}

func NewPingService(conn Pinger, opts ...func(*Options)) *PingService {
	return &PingService{conn: conn, opts: buildOptions(opts)}
}

// CheckConnection пингует хранилище не дольше StoreTimeout.
//
// Возвращает:
//   - error: ErrStoreUnavailable, если хранилище не ответило
func (s *PingService) CheckConnection(ctx context.Context) error {
	_, err := storeCall(ctx, s.opts.StoreTimeout, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.conn.Ping(ctx)
	})
	if err != nil {
		return fmt.Errorf("%w: ping error: %w", ErrStoreUnavailable, err)
	}
	return nil
}
