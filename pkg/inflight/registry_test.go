package inflight

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_MarkAndClear(t *testing.T) {
	r := NewRegistry()
	const key = "https://example.com/a.gif"

	assert.False(t, r.IsActive(key))

	r.MarkActive(key)
	assert.True(t, r.IsActive(key))

	r.MarkActive(key)
	assert.Equal(t, 1, r.Len(), "marking twice must not add a second entry")

	r.ClearActive(key)
	assert.False(t, r.IsActive(key))

	assert.NotPanics(t, func() { r.ClearActive(key) }, "clearing twice is a no-op")
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_TryMarkActive(t *testing.T) {
	var r Registry
	const key = "https://example.com/a.gif"

	assert.True(t, r.TryMarkActive(key))
	assert.False(t, r.TryMarkActive(key))
	assert.True(t, r.IsActive(key))

	r.ClearActive(key)
	assert.True(t, r.TryMarkActive(key))
}

func TestRegistry_TryMarkActiveSingleWinner(t *testing.T) {
	r := NewRegistry()
	const key = "https://example.com/race.gif"
	const callers = 32

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if r.TryMarkActive(key) {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
}

func TestRegistry_KeysAreNotNormalized(t *testing.T) {
	r := NewRegistry()
	r.MarkActive("https://example.com/A.gif")

	assert.False(t, r.IsActive("https://example.com/a.gif"))
	assert.False(t, r.IsActive("https://example.com/A.gif?x=1"))
}

func TestRegistry_ZeroValue(t *testing.T) {
	var r Registry
	r.MarkActive("k")
	assert.True(t, r.IsActive("k"))
	r.ClearActive("k")
	assert.False(t, r.IsActive("k"))
}

func TestRegistry_VisibleToOtherGoroutines(t *testing.T) {
	r := NewRegistry()
	const key = "https://example.com/shared.gif"

	r.MarkActive(key)

	seen := make(chan bool)
	go func() { seen <- r.IsActive(key) }()
	assert.True(t, <-seen)
}

func TestRegistry_DoneClosesOnClear(t *testing.T) {
	r := NewRegistry()
	const key = "k"

	select {
	case <-r.Done(key):
	default:
		t.Fatal("Done for an inactive key should already be closed")
	}

	r.MarkActive(key)
	done := r.Done(key)

	select {
	case <-done:
		t.Fatal("Done closed before ClearActive")
	default:
	}

	r.ClearActive(key)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Done not closed after ClearActive")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry()
	keys := []string{"a", "b", "c", "d"}

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			k := keys[i%len(keys)]
			r.MarkActive(k)
			_ = r.IsActive(k)
			<-r.Done("unrelated")
			r.ClearActive(k)
		}(i)
	}
	wg.Wait()

	require.Equal(t, 0, r.Len())
}
