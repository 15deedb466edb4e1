package vectormap

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/hupe1980/vectormap/internal/conv"
)

// Reserve sets the capacity to the smallest multiple of the growth delta that
// is strictly greater than minCapacity, i.e. ((minCapacity / D) + 1) * D.
//
// The result may be smaller than the current capacity. Reserve fails with
// ErrCapacityBelowSize when minCapacity < Len and with ErrAllocationFailed
// when the new buffer cannot be obtained; in both cases the map is unchanged.
// A successful Reserve invalidates all handles.
func (m *VectorMap[K, V]) Reserve(minCapacity int) error {
	if minCapacity < m.size {
		m.opts.logger.LogReserveRejected(minCapacity, m.size)
		return &ErrCapacityTooSmall{Requested: minCapacity, Size: m.size}
	}

	if minCapacity > math.MaxInt-m.opts.delta {
		err := allocationFailed(fmt.Errorf("capacity %d overflows", minCapacity))
		m.opts.logger.LogAllocationFailed(minCapacity, 0, err)
		m.opts.metricsCollector.RecordResize(len(m.buf), minCapacity, err)
		return err
	}

	return m.Resize(m.roundUp(minCapacity))
}

// Resize reallocates the buffer to exactly newCapacity slots, moving the live
// entries over. It is all-or-nothing: on failure the old buffer stays in place.
//
// Resize fails with ErrCapacityBelowSize when newCapacity < Len.
func (m *VectorMap[K, V]) Resize(newCapacity int) error {
	if newCapacity < m.size {
		m.opts.logger.LogReserveRejected(newCapacity, m.size)
		return &ErrCapacityTooSmall{Requested: newCapacity, Size: m.size}
	}

	return m.realloc(newCapacity, m.size)
}

// Shrink trims the capacity to Len.
func (m *VectorMap[K, V]) Shrink() error {
	return m.Resize(m.size)
}

// realloc replaces the buffer with one of newCapacity slots holding the first
// keep live entries. The memory for the new buffer is acquired before anything
// is touched.
func (m *VectorMap[K, V]) realloc(newCapacity, keep int) error {
	oldCapacity := len(m.buf)

	bytes, err := conv.SlotsToBytes(newCapacity, m.slotSize())
	if err == nil && m.opts.acquirer != nil {
		err = m.opts.acquirer.AcquireMemory(bytes)
	}
	if err != nil {
		err = allocationFailed(err)
		m.opts.logger.LogAllocationFailed(newCapacity, bytes, err)
		m.opts.metricsCollector.RecordResize(oldCapacity, newCapacity, err)
		return err
	}

	var buf []Entry[K, V]
	if newCapacity > 0 {
		buf = make([]Entry[K, V], newCapacity)
		copy(buf, m.buf[:keep])
	}

	// Zero the old slots so the old block keeps nothing reachable.
	clear(m.buf[:m.size])
	m.release()

	m.buf = buf
	m.held = bytes
	m.size = keep
	m.invalidate()

	m.opts.logger.LogResize(oldCapacity, newCapacity, keep)
	m.opts.metricsCollector.RecordResize(oldCapacity, newCapacity, nil)

	return nil
}

// release returns the bytes held for the current buffer to the acquirer.
func (m *VectorMap[K, V]) release() {
	if m.held > 0 && m.opts.acquirer != nil {
		m.opts.acquirer.ReleaseMemory(m.held)
	}
	m.held = 0
}

// grow makes room for n more entries, reserving only when the capacity is exceeded.
func (m *VectorMap[K, V]) grow(n int) error {
	if n > len(m.buf)-m.size {
		return m.Reserve(m.size + n)
	}
	return nil
}

// openGap shifts buf[pos:size] right by n, highest index first, and extends
// size by n. The slots buf[pos:pos+n] still hold their old values and must be
// overwritten by the caller.
func (m *VectorMap[K, V]) openGap(pos, n int) error {
	if err := m.grow(n); err != nil {
		return err
	}

	for i := m.size - 1; i >= pos; i-- {
		m.buf[i+n] = m.buf[i]
	}

	m.size += n
	m.invalidate()

	return nil
}

// closeGap removes buf[pos:pos+n], shifting the tail left and zeroing the
// vacated slots at the end.
func (m *VectorMap[K, V]) closeGap(pos, n int) {
	copy(m.buf[pos:], m.buf[pos+n:m.size])
	clear(m.buf[m.size-n : m.size])
	m.size -= n
	m.invalidate()
}

func (m *VectorMap[K, V]) roundUp(n int) int {
	return (n/m.opts.delta + 1) * m.opts.delta
}

func (m *VectorMap[K, V]) slotSize() uintptr {
	var e Entry[K, V]
	return unsafe.Sizeof(e)
}
