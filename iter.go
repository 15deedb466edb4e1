package vectormap

import (
	"iter"
)

// All yields positions and entries front to back.
// The map must not be mutated during iteration.
func (m *VectorMap[K, V]) All() iter.Seq2[int, Entry[K, V]] {
	return func(yield func(int, Entry[K, V]) bool) {
		for i := 0; i < m.size; i++ {
			if !yield(i, m.buf[i]) {
				return
			}
		}
	}
}

// Backward yields positions and entries back to front.
func (m *VectorMap[K, V]) Backward() iter.Seq2[int, Entry[K, V]] {
	return func(yield func(int, Entry[K, V]) bool) {
		for i := m.size - 1; i >= 0; i-- {
			if !yield(i, m.buf[i]) {
				return
			}
		}
	}
}

// Keys yields the keys in position order, duplicates included.
func (m *VectorMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for i := 0; i < m.size; i++ {
			if !yield(m.buf[i].Key) {
				return
			}
		}
	}
}

// AllValues yields the values in position order.
func (m *VectorMap[K, V]) AllValues() iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := 0; i < m.size; i++ {
			if !yield(m.buf[i].Value) {
				return
			}
		}
	}
}
