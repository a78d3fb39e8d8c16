package pure

import (
	"sync"
	"sync/atomic"
)

// Trie is a bounded memo table keyed by argument paths.
// It keeps two generations; once the live generation has taken maxSize
// stores the other one becomes live, so the oldest entries age out.
type Trie[O any] struct {
	memos   [2]*sync.Map
	headIdx atomic.Uint32
	size    atomic.Uint32
	maxSize uint32
}

func (t *Trie[O]) Load(keys []any) (O, bool) {
	headIdx := t.headIdx.Load()
	for _, idx := range [2]uint32{headIdx, 1 - headIdx} {
		m, k := t.traverse(t.memos[idx], keys)
		if v, ok := m.Load(k); ok {
			return v.(O), true
		}
	}
	var zero O
	return zero, false
}

func (t *Trie[O]) traverse(targetMap *sync.Map, keys []any) (*sync.Map, any) {
	length := len(keys)
	if length == 0 {
		panic("traverse: empty keys")
	}

	for _, k := range keys[:length-1] {
		v, _ := targetMap.LoadOrStore(k, &sync.Map{})
		targetMap = v.(*sync.Map)
	}
	return targetMap, keys[length-1]
}

func (t *Trie[O]) Store(keys []any, value O) {
	if swapped := t.size.CompareAndSwap(t.maxSize, 0); swapped {
		next := 1 - t.headIdx.Load()
		t.memos[next].Clear()
		t.headIdx.Store(next)
	}
	m, k := t.traverse(t.memos[t.headIdx.Load()], keys)
	m.Store(k, value)
	t.size.Add(1)
}

func NewTrie[O any](maxSize uint32) *Trie[O] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	return &Trie[O]{
		memos:   [2]*sync.Map{{}, {}},
		maxSize: maxSize,
	}
}
