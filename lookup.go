package vectormap

// At returns the entry at pos, or an *ErrIndexOutOfRange when pos is not in [0, Len).
func (m *VectorMap[K, V]) At(pos int) (Entry[K, V], error) {
	if pos < 0 || pos >= m.size {
		return Entry[K, V]{}, outOfRange(pos, m.size)
	}
	return m.buf[pos], nil
}

// HandleAt returns a handle to the entry at pos.
func (m *VectorMap[K, V]) HandleAt(pos int) (Handle[K, V], error) {
	if pos < 0 || pos >= m.size {
		return m.End(), outOfRange(pos, m.size)
	}
	return m.handle(pos), nil
}

// KeyAt returns the key at pos.
func (m *VectorMap[K, V]) KeyAt(pos int) (K, error) {
	e, err := m.At(pos)
	return e.Key, err
}

// ValueAt returns the value at pos.
func (m *VectorMap[K, V]) ValueAt(pos int) (V, error) {
	e, err := m.At(pos)
	return e.Value, err
}

// scan calls fn for every position holding key, in ascending order, until fn
// returns false.
func (m *VectorMap[K, V]) scan(key K, fn func(pos int) bool) {
	i := 0
	for ; i < m.size; i++ {
		if m.buf[i].Key == key && !fn(i) {
			i++
			break
		}
	}
	m.opts.metricsCollector.RecordLookup(i)
}

// Find returns the first entry with key and its position, or (End(), NPos).
func (m *VectorMap[K, V]) Find(key K) (Handle[K, V], int) {
	return m.FindNth(key, 1)
}

// FindNth returns the ordinal-th entry with key, counting from 1, and its
// position. It returns (End(), NPos) when ordinal < 1 or there are fewer
// matches.
func (m *VectorMap[K, V]) FindNth(key K, ordinal int) (Handle[K, V], int) {
	pos := NPos
	if ordinal >= 1 {
		seen := 0
		m.scan(key, func(p int) bool {
			seen++
			if seen == ordinal {
				pos = p
				return false
			}
			return true
		})
	}

	if pos == NPos {
		return m.End(), NPos
	}
	return m.handle(pos), pos
}

// FindN returns up to count matches of key, starting with the ordinal-th
// (counting from 1), in ascending position order.
func (m *VectorMap[K, V]) FindN(key K, ordinal, count int) []Match[K, V] {
	if ordinal < 1 || count < 1 {
		return nil
	}

	var out []Match[K, V]
	seen := 0
	m.scan(key, func(p int) bool {
		seen++
		if seen >= ordinal {
			out = append(out, Match[K, V]{Handle: m.handle(p), Pos: p})
		}
		return len(out) < count
	})

	return out
}

// FindAll returns every match of key in ascending position order.
func (m *VectorMap[K, V]) FindAll(key K) []Match[K, V] {
	var out []Match[K, V]
	m.scan(key, func(p int) bool {
		out = append(out, Match[K, V]{Handle: m.handle(p), Pos: p})
		return true
	})
	return out
}

// Contains reports whether any entry has key.
func (m *VectorMap[K, V]) Contains(key K) bool {
	_, pos := m.Find(key)
	return pos != NPos
}

// Count returns the number of entries with key.
func (m *VectorMap[K, V]) Count(key K) int {
	n := 0
	m.scan(key, func(int) bool {
		n++
		return true
	})
	return n
}

// Value returns the value of the first entry with key.
func (m *VectorMap[K, V]) Value(key K) (V, bool) {
	return m.ValueNth(key, 1)
}

// ValueNth returns the value of the ordinal-th entry with key.
func (m *VectorMap[K, V]) ValueNth(key K, ordinal int) (V, bool) {
	_, pos := m.FindNth(key, ordinal)
	if pos == NPos {
		var zero V
		return zero, false
	}
	return m.buf[pos].Value, true
}

// ValuesN returns the values of up to count matches starting with the ordinal-th.
func (m *VectorMap[K, V]) ValuesN(key K, ordinal, count int) []V {
	return values(m, m.FindN(key, ordinal, count))
}

// Values returns the values of all entries with key, in position order.
func (m *VectorMap[K, V]) Values(key K) []V {
	return values(m, m.FindAll(key))
}

// PosOf returns the position of the first entry with key, or NPos.
func (m *VectorMap[K, V]) PosOf(key K) int {
	_, pos := m.Find(key)
	return pos
}

// PosOfNth returns the position of the ordinal-th entry with key, or NPos.
func (m *VectorMap[K, V]) PosOfNth(key K, ordinal int) int {
	_, pos := m.FindNth(key, ordinal)
	return pos
}

// PositionsN returns the positions of up to count matches starting with the ordinal-th.
func (m *VectorMap[K, V]) PositionsN(key K, ordinal, count int) []int {
	return positions(m.FindN(key, ordinal, count))
}

// Positions returns the positions of all entries with key, ascending.
func (m *VectorMap[K, V]) Positions(key K) []int {
	return positions(m.FindAll(key))
}

func values[K Keyable, V any](m *VectorMap[K, V], matches []Match[K, V]) []V {
	if len(matches) == 0 {
		return nil
	}
	out := make([]V, len(matches))
	for i, match := range matches {
		out[i] = m.buf[match.Pos].Value
	}
	return out
}

func positions[K Keyable, V any](matches []Match[K, V]) []int {
	if len(matches) == 0 {
		return nil
	}
	out := make([]int, len(matches))
	for i, match := range matches {
		out[i] = match.Pos
	}
	return out
}
