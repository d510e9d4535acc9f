// Package slug генерирует случайные короткие идентификаторы для публикуемых ссылок.
package slug

import (
	crand "crypto/rand"
	"math/rand/v2"
	"sync"
)

// Alphabet набор символов слага: строчные и прописные латинские буквы и цифры.
const Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// DefaultLength длина слага по умолчанию.
const DefaultLength = 8

// Options настройки генератора.
type Options struct {
	Length int         // Длина слага
	Source rand.Source // Источник случайности. Если nil, используется ChaCha8 с криптостойким сидом
}

// Generator генератор слагов. Безопасен для конкурентного использования.
type Generator struct {
	mu     sync.Mutex
	rnd    *rand.Rand
	length int
}

// New создает генератор слагов.
//
// Параметры:
//   - opts: функции для настройки генератора
//
// Возвращает:
//   - *Generator: генератор слагов
func New(opts ...func(*Options)) *Generator {
	options := Options{Length: DefaultLength}
	for _, opt := range opts {
		opt(&options)
	}
	if options.Length <= 0 {
		options.Length = DefaultLength
	}
	if options.Source == nil {
		var seed [32]byte
		_, _ = crand.Read(seed[:])
		options.Source = rand.NewChaCha8(seed)
	}
	return &Generator{
		rnd:    rand.New(options.Source), //nolint:gosec
		length: options.Length,
	}
}

// WithLength задает длину слага.
func WithLength(n int) func(*Options) {
	return func(o *Options) {
		o.Length = n
	}
}

// WithSource задает источник случайности. Используется в тестах для детерминированного результата.
func WithSource(src rand.Source) func(*Options) {
	return func(o *Options) {
		o.Source = src
	}
}

// Length возвращает длину генерируемых слагов.
func (g *Generator) Length() int {
	return g.length
}

// Generate возвращает новый слаг. Уникальность не гарантируется.
func (g *Generator) Generate() string {
	b := make([]byte, g.length)

	g.mu.Lock()
	defer g.mu.Unlock()

	for i := range b {
		b[i] = Alphabet[g.rnd.IntN(len(Alphabet))]
	}
	return string(b)
}
