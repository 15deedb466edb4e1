package testutil

import "slices"

// Pair is a key-value pair of the reference model.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Model is a deliberately naive ordered multimap over a plain slice.
// It is the oracle for randomized tests: every operation is written with the
// slices package, without any manual buffer management.
type Model[K comparable, V any] struct {
	Pairs []Pair[K, V]
}

// Insert inserts pairs at pos. It reports false if pos is out of range.
func (m *Model[K, V]) Insert(pos int, pairs ...Pair[K, V]) bool {
	if pos < 0 || pos > len(m.Pairs) {
		return false
	}
	m.Pairs = slices.Insert(m.Pairs, pos, pairs...)
	return true
}

// Erase removes the pair at pos. It reports false if pos is out of range.
func (m *Model[K, V]) Erase(pos int) bool {
	if pos < 0 || pos >= len(m.Pairs) {
		return false
	}
	m.Pairs = slices.Delete(m.Pairs, pos, pos+1)
	return true
}

// EraseAll removes every pair with key and returns how many were removed.
func (m *Model[K, V]) EraseAll(key K) int {
	before := len(m.Pairs)
	m.Pairs = slices.DeleteFunc(m.Pairs, func(p Pair[K, V]) bool { return p.Key == key })
	return before - len(m.Pairs)
}

// Swap exchanges the pairs at a and b.
func (m *Model[K, V]) Swap(a, b int) bool {
	if a < 0 || b < 0 || a >= len(m.Pairs) || b >= len(m.Pairs) {
		return false
	}
	m.Pairs[a], m.Pairs[b] = m.Pairs[b], m.Pairs[a]
	return true
}

// Move removes the pair at from and reinserts it at to.
func (m *Model[K, V]) Move(from, to int) bool {
	if from < 0 || to < 0 || from >= len(m.Pairs) || to >= len(m.Pairs) {
		return false
	}
	p := m.Pairs[from]
	m.Pairs = slices.Delete(m.Pairs, from, from+1)
	m.Pairs = slices.Insert(m.Pairs, to, p)
	return true
}

// Positions returns the positions holding key, ascending.
func (m *Model[K, V]) Positions(key K) []int {
	var out []int
	for i, p := range m.Pairs {
		if p.Key == key {
			out = append(out, i)
		}
	}
	return out
}

// Len returns the number of pairs.
func (m *Model[K, V]) Len() int {
	return len(m.Pairs)
}
