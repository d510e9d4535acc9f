package memory

import "errors"

var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrBadSnapshot снимок поврежден или нарушает уникальность ключей.
	ErrBadSnapshot = errors.New("bad snapshot")
)
