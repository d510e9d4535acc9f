package slug

import (
	"math/rand/v2"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate(t *testing.T) {
	tests := []struct {
		name   string
		opts   []func(*Options)
		length int
	}{
		{name: "default", opts: nil, length: DefaultLength},
		{name: "custom length", opts: []func(*Options){WithLength(12)}, length: 12},
		{name: "zero length falls back", opts: []func(*Options){WithLength(0)}, length: DefaultLength},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(tt.opts...)
			for range 100 {
				s := g.Generate()
				require.Len(t, s, tt.length)
				for _, r := range s {
					assert.True(t, strings.ContainsRune(Alphabet, r), "unexpected rune %q", r)
				}
			}
		})
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	g1 := New(WithSource(rand.NewPCG(1, 2)))
	g2 := New(WithSource(rand.NewPCG(1, 2)))

	for range 10 {
		assert.Equal(t, g1.Generate(), g2.Generate())
	}
}

func TestGenerator_Concurrent(t *testing.T) {
	g := New()
	var wg sync.WaitGroup
	results := make(chan string, 200)
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				results <- g.Generate()
			}
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[string]struct{})
	for s := range results {
		assert.Len(t, s, DefaultLength)
		seen[s] = struct{}{}
	}
	// 200 слагов из 62^8 вариантов практически не пересекаются.
	assert.Greater(t, len(seen), 190)
}
