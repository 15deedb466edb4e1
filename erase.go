package vectormap

import (
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/vectormap/internal/conv"
)

// Erase removes the entry at pos, shifting later entries left. Positions out
// of range (including NPos) are a no-op and report false. Capacity is kept.
func (m *VectorMap[K, V]) Erase(pos int) bool {
	if !m.eraseAt(pos) {
		return false
	}
	m.opts.metricsCollector.RecordErase(1)
	return true
}

// EraseKey removes the first entry with key.
func (m *VectorMap[K, V]) EraseKey(key K) bool {
	return m.Erase(m.PosOf(key))
}

// EraseAll removes every entry with key and returns how many were removed.
// Matches are erased from the highest position down so that pending
// positions stay valid.
func (m *VectorMap[K, V]) EraseAll(key K) int {
	set, err := m.MatchSet(key)
	if err != nil {
		// Positions beyond the 32-bit bitmap universe.
		return m.eraseDescending(m.Positions(key))
	}
	return m.EraseSet(set)
}

// MatchSet returns the positions of all entries with key as a bitmap.
func (m *VectorMap[K, V]) MatchSet(key K) (*roaring.Bitmap, error) {
	set := roaring.New()

	var err error
	m.scan(key, func(p int) bool {
		var u uint32
		if u, err = conv.IntToUint32(p); err != nil {
			return false
		}
		set.Add(u)
		return true
	})
	if err != nil {
		return nil, err
	}

	return set, nil
}

// EraseSet removes the entries at the positions in set, highest first, and
// returns how many were removed. Positions out of range are skipped.
func (m *VectorMap[K, V]) EraseSet(set *roaring.Bitmap) int {
	if set == nil {
		return 0
	}

	n := 0
	it := set.ReverseIterator()
	for it.HasNext() {
		pos, err := conv.Uint32ToInt(it.Next())
		if err != nil {
			continue
		}
		if m.eraseAt(pos) {
			n++
		}
	}

	if n > 0 {
		m.opts.metricsCollector.RecordErase(n)
	}
	return n
}

func (m *VectorMap[K, V]) eraseDescending(ps []int) int {
	slices.Sort(ps)

	n := 0
	for i := len(ps) - 1; i >= 0; i-- {
		if m.eraseAt(ps[i]) {
			n++
		}
	}

	if n > 0 {
		m.opts.metricsCollector.RecordErase(n)
	}
	return n
}

func (m *VectorMap[K, V]) eraseAt(pos int) bool {
	if m.size == 0 || pos < 0 || pos >= m.size {
		return false
	}
	m.closeGap(pos, 1)
	return true
}

// Swap exchanges the entries at a and b. Other entries and the capacity are
// untouched.
func (m *VectorMap[K, V]) Swap(a, b int) error {
	if a < 0 || a >= m.size {
		return outOfRange(a, m.size)
	}
	if b < 0 || b >= m.size {
		return outOfRange(b, m.size)
	}

	m.buf[a], m.buf[b] = m.buf[b], m.buf[a]
	m.invalidate()

	return nil
}

// Move removes the entry at from and reinserts it so that it ends up at
// position to, shifting the entries in between by one.
func (m *VectorMap[K, V]) Move(from, to int) error {
	if from < 0 || from >= m.size {
		return outOfRange(from, m.size)
	}
	if to < 0 || to >= m.size {
		return outOfRange(to, m.size)
	}

	e := m.buf[from]
	switch {
	case from < to:
		copy(m.buf[from:to], m.buf[from+1:to+1])
	case from > to:
		copy(m.buf[to+1:from+1], m.buf[to:from])
	}
	m.buf[to] = e
	m.invalidate()

	return nil
}

// Clear destroys all entries. The capacity is kept.
func (m *VectorMap[K, V]) Clear() {
	n := m.size
	clear(m.buf[:m.size])
	m.size = 0
	m.invalidate()

	if n > 0 {
		m.opts.metricsCollector.RecordErase(n)
	}
}
