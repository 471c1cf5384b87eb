package pure

import (
	"sync"
	"sync/atomic"
)

// Memo is a bounded lookup table for results of pure functions.
// It keeps two generations: writes go to the head generation, reads fall back
// to the tail. When the head is full the tail is dropped and the generations
// swap, so hot entries survive one rotation.
//
// Memo is safe for concurrent use.
type Memo[K comparable, V any] struct {
	gens    [2]*sync.Map
	headIdx atomic.Uint32
	size    atomic.Uint32
	maxSize uint32
	mu      sync.Mutex
}

func NewMemo[K comparable, V any](maxSize uint32) *Memo[K, V] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	return &Memo[K, V]{
		gens:    [2]*sync.Map{{}, {}},
		maxSize: maxSize,
	}
}

func (m *Memo[K, V]) Load(k K) (V, bool) {
	head := m.headIdx.Load()
	v, ok := m.gens[head].Load(k)
	if !ok {
		v, ok = m.gens[1-head].Load(k)
		if !ok {
			var zero V
			return zero, false
		}
	}
	return v.(V), true
}

func (m *Memo[K, V]) Store(k K, v V) {
	if m.size.Load() >= m.maxSize {
		m.rotate()
	}
	m.gens[m.headIdx.Load()].Store(k, v)
	m.size.Add(1)
}

func (m *Memo[K, V]) rotate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.size.Load() < m.maxSize {
		return
	}
	next := 1 - m.headIdx.Load()
	m.gens[next].Clear()
	m.headIdx.Store(next)
	m.size.Store(0)
}
