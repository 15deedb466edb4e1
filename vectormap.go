package vectormap

import (
	"fmt"
	"math"
	"strings"
)

// NPos is the position reported when a lookup finds nothing.
// Positions at or beyond Len, and negative positions, are never valid.
const NPos = math.MaxInt

// Entry is one stored key-value pair.
type Entry[K Keyable, V any] struct {
	Key   K
	Value V
}

// MakeEntry returns the entry {key, value}.
func MakeEntry[K Keyable, V any](key K, value V) Entry[K, V] {
	return Entry[K, V]{Key: key, Value: value}
}

// VectorMap is an insertion-ordered multimap stored in one contiguous buffer.
//
// Keys may repeat; among equal keys the lowest position is the first match.
// Lookups scan linearly. A VectorMap is not safe for concurrent use.
type VectorMap[K Keyable, V any] struct {
	buf  []Entry[K, V] // len(buf) is the capacity; buf[size:] holds zero values
	size int
	held int64  // bytes acquired for buf
	gen  uint64 // bumped whenever outstanding handles become invalid
	opts options
}

// New creates an empty map. No buffer is allocated until the first insertion
// or Reserve, so Cap is 0 and Data is nil.
func New[K Keyable, V any](optFns ...Option) (*VectorMap[K, V], error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	if err := checkKeyType[K](); err != nil {
		return nil, err
	}
	if opts.delta < 1 {
		return nil, ErrInvalidDelta
	}

	opts.logger = opts.logger.WithDelta(opts.delta)

	return &VectorMap[K, V]{opts: opts}, nil
}

// FromEntries creates a map holding a copy of entries in order.
//
// The initial capacity is the growth delta D when len(entries) <= D and
// ((len(entries) / D) + 1) * D otherwise.
func FromEntries[K Keyable, V any](entries []Entry[K, V], optFns ...Option) (*VectorMap[K, V], error) {
	m, err := New[K, V](optFns...)
	if err != nil {
		return nil, err
	}

	capacity := m.opts.delta
	if len(entries) > capacity {
		capacity = m.roundUp(len(entries))
	}

	if err := m.realloc(capacity, 0); err != nil {
		return nil, err
	}

	copy(m.buf, entries)
	m.size = len(entries)

	return m, nil
}

// Len returns the number of live entries.
func (m *VectorMap[K, V]) Len() int {
	return m.size
}

// Cap returns the number of allocated entry slots.
func (m *VectorMap[K, V]) Cap() int {
	return len(m.buf)
}

// Delta returns the growth delta.
func (m *VectorMap[K, V]) Delta() int {
	return m.opts.delta
}

// IsEmpty reports whether the map holds no entries.
func (m *VectorMap[K, V]) IsEmpty() bool {
	return m.buf == nil || m.size == 0
}

// Data returns the live entries as a slice aliasing the buffer, or nil when
// no buffer is allocated. Writes through the slice are visible in the map.
// The slice is invalidated by the next mutating call.
func (m *VectorMap[K, V]) Data() []Entry[K, V] {
	if m.buf == nil {
		return nil
	}
	return m.buf[:m.size:m.size]
}

// Clone returns an independent deep copy with the same capacity and options.
func (m *VectorMap[K, V]) Clone() (*VectorMap[K, V], error) {
	c := &VectorMap[K, V]{opts: m.opts}
	if m.buf == nil {
		return c, nil
	}

	if err := c.realloc(len(m.buf), 0); err != nil {
		return nil, err
	}

	copy(c.buf, m.buf[:m.size])
	c.size = m.size

	return c, nil
}

// Take transfers the buffer to a new map and leaves m empty with Cap 0 and a
// nil Data. The new map has m's options.
func (m *VectorMap[K, V]) Take() *VectorMap[K, V] {
	t := &VectorMap[K, V]{
		buf:  m.buf,
		size: m.size,
		held: m.held,
		opts: m.opts,
	}

	m.buf, m.size, m.held = nil, 0, 0
	m.invalidate()

	return t
}

// CopyFrom replaces the contents of m with copies of src's entries.
//
// The buffer grows when src has more entries than m's capacity and is never
// shrunk. If growing fails, m is left unchanged.
func (m *VectorMap[K, V]) CopyFrom(src *VectorMap[K, V]) error {
	if src == m {
		return nil
	}

	var entries []Entry[K, V]
	if src != nil {
		entries = src.buf[:src.size]
	}

	if len(entries) > len(m.buf) {
		if err := m.realloc(m.roundUp(len(entries)), 0); err != nil {
			return err
		}
	} else {
		clear(m.buf[:m.size])
	}

	copy(m.buf, entries)
	m.size = len(entries)
	m.invalidate()

	return nil
}

// MoveFrom releases m's buffer and takes over src's. src is left empty with
// Cap 0 and a nil Data.
//
// The memory acquirer travels with the buffer: m adopts src's acquirer and
// src keeps m's previous one for future allocations.
func (m *VectorMap[K, V]) MoveFrom(src *VectorMap[K, V]) {
	if src == nil || src == m {
		return
	}

	m.Free()

	m.opts.acquirer, src.opts.acquirer = src.opts.acquirer, m.opts.acquirer
	m.buf, m.size, m.held = src.buf, src.size, src.held
	src.buf, src.size, src.held = nil, 0, 0

	src.invalidate()
}

// SwapWith exchanges the contents of m and other, together with the memory
// acquirers the buffers are accounted against.
func (m *VectorMap[K, V]) SwapWith(other *VectorMap[K, V]) {
	if other == nil || other == m {
		return
	}

	m.opts.acquirer, other.opts.acquirer = other.opts.acquirer, m.opts.acquirer
	m.buf, other.buf = other.buf, m.buf
	m.size, other.size = other.size, m.size
	m.held, other.held = other.held, m.held

	m.invalidate()
	other.invalidate()
}

// Free destroys all entries and releases the buffer.
// The map stays usable and allocates again on the next insertion.
func (m *VectorMap[K, V]) Free() {
	clear(m.buf[:m.size])
	m.release()
	m.buf, m.size = nil, 0
	m.invalidate()
}

// String renders the map as {k: v, k: v} in position order.
func (m *VectorMap[K, V]) String() string {
	var builder strings.Builder
	builder.WriteString("{")

	for i, e := range m.buf[:m.size] {
		if i > 0 {
			builder.WriteString(", ")
		}
		fmt.Fprintf(&builder, "%v: %v", e.Key, e.Value)
	}

	builder.WriteString("}")
	return builder.String()
}

func (m *VectorMap[K, V]) invalidate() {
	m.gen++
}
