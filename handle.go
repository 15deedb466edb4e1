package vectormap

// Handle refers to a position in a VectorMap, iterator style.
//
// A handle records the generation of the map it was issued from. Any call
// that reorders entries or reallocates the buffer (insert, erase, swap, move,
// clear, reserve, resize, copy/move/swap of maps) starts a new generation, and
// older handles then report ErrStaleHandle instead of reading whatever entry
// happens to sit at their position.
//
// The zero Handle is stale.
type Handle[K Keyable, V any] struct {
	m   *VectorMap[K, V]
	pos int
	gen uint64
}

// Match pairs a handle with its position, as returned by key lookups.
type Match[K Keyable, V any] struct {
	Handle Handle[K, V]
	Pos    int
}

func (m *VectorMap[K, V]) handle(pos int) Handle[K, V] {
	return Handle[K, V]{m: m, pos: pos, gen: m.gen}
}

// Begin returns a handle to the first entry (equal to End when empty).
func (m *VectorMap[K, V]) Begin() Handle[K, V] {
	return m.handle(0)
}

// End returns the past-the-end handle.
func (m *VectorMap[K, V]) End() Handle[K, V] {
	return m.handle(m.size)
}

// Last returns a handle to the last entry. It is not Valid when the map is empty.
func (m *VectorMap[K, V]) Last() Handle[K, V] {
	return m.handle(m.size - 1)
}

// Pos returns the position the handle refers to.
func (h Handle[K, V]) Pos() int {
	return h.pos
}

// Stale reports whether the map was mutated since the handle was issued.
func (h Handle[K, V]) Stale() bool {
	return h.m == nil || h.gen != h.m.gen
}

// Valid reports whether the handle is current and addresses a live entry.
func (h Handle[K, V]) Valid() bool {
	return !h.Stale() && h.pos >= 0 && h.pos < h.m.size
}

// IsEnd reports whether the handle is current and past the last entry.
func (h Handle[K, V]) IsEnd() bool {
	return !h.Stale() && h.pos == h.m.size
}

// Entry returns the entry the handle refers to.
func (h Handle[K, V]) Entry() (Entry[K, V], error) {
	if err := h.check(); err != nil {
		return Entry[K, V]{}, err
	}
	return h.m.buf[h.pos], nil
}

// Key returns the key of the entry the handle refers to.
func (h Handle[K, V]) Key() (K, error) {
	e, err := h.Entry()
	return e.Key, err
}

// Value returns the value of the entry the handle refers to.
func (h Handle[K, V]) Value() (V, error) {
	e, err := h.Entry()
	return e.Value, err
}

// SetValue replaces the value in place. Keys are immutable through a handle.
// Setting a value does not invalidate handles.
func (h Handle[K, V]) SetValue(value V) error {
	if err := h.check(); err != nil {
		return err
	}
	h.m.buf[h.pos].Value = value
	return nil
}

// Next returns a handle to the following position.
func (h Handle[K, V]) Next() Handle[K, V] {
	h.pos++
	return h
}

// Prev returns a handle to the preceding position.
func (h Handle[K, V]) Prev() Handle[K, V] {
	h.pos--
	return h
}

// Equal reports whether both handles refer to the same position of the same
// map generation.
func (h Handle[K, V]) Equal(other Handle[K, V]) bool {
	return h.m == other.m && h.pos == other.pos && h.gen == other.gen
}

func (h Handle[K, V]) check() error {
	if h.Stale() {
		return ErrStaleHandle
	}
	if h.pos < 0 || h.pos >= h.m.size {
		return outOfRange(h.pos, h.m.size)
	}
	return nil
}
