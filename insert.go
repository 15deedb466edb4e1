package vectormap

// Insert stores {key, value} at pos, shifting the entries at pos and after one
// slot to the right. pos == Len appends.
//
// It returns a handle to the new entry. On failure it returns the end handle
// and an error: ErrOutOfRange when pos > Len, ErrAllocationFailed when the
// buffer could not grow. A failed insert leaves the map unchanged.
func (m *VectorMap[K, V]) Insert(pos int, key K, value V) (Handle[K, V], error) {
	return m.InsertEntries(pos, Entry[K, V]{Key: key, Value: value})
}

// InsertEntry stores e at pos. See Insert.
func (m *VectorMap[K, V]) InsertEntry(pos int, e Entry[K, V]) (Handle[K, V], error) {
	return m.InsertEntries(pos, e)
}

// InsertEntries stores entries at pos in the given order, opening a single gap
// of len(entries) slots. The returned handle addresses the first inserted entry
// (or pos itself when entries is empty).
func (m *VectorMap[K, V]) InsertEntries(pos int, entries ...Entry[K, V]) (Handle[K, V], error) {
	if pos < 0 || pos > m.size {
		err := outOfRange(pos, m.size)
		m.opts.metricsCollector.RecordInsert(len(entries), err)
		return m.End(), err
	}

	if err := m.openGap(pos, len(entries)); err != nil {
		m.opts.metricsCollector.RecordInsert(len(entries), err)
		return m.End(), err
	}

	copy(m.buf[pos:pos+len(entries)], entries)
	m.opts.metricsCollector.RecordInsert(len(entries), nil)

	return m.handle(pos), nil
}

// InsertMap stores copies of all entries of other at pos, in other's order.
//
// Inserting a map into itself is not supported.
func (m *VectorMap[K, V]) InsertMap(pos int, other *VectorMap[K, V]) (Handle[K, V], error) {
	if other == nil {
		return m.InsertEntries(pos)
	}
	return m.InsertEntries(pos, other.buf[:other.size]...)
}

// PushBack appends {key, value}.
func (m *VectorMap[K, V]) PushBack(key K, value V) (Handle[K, V], error) {
	return m.Insert(m.size, key, value)
}

// PushBackEntries appends entries in order.
func (m *VectorMap[K, V]) PushBackEntries(entries ...Entry[K, V]) (Handle[K, V], error) {
	return m.InsertEntries(m.size, entries...)
}

// PushBackMap appends the entries of other.
func (m *VectorMap[K, V]) PushBackMap(other *VectorMap[K, V]) (Handle[K, V], error) {
	return m.InsertMap(m.size, other)
}

// PushFront prepends {key, value}.
func (m *VectorMap[K, V]) PushFront(key K, value V) (Handle[K, V], error) {
	return m.Insert(0, key, value)
}

// PushFrontEntries prepends entries, keeping their order.
func (m *VectorMap[K, V]) PushFrontEntries(entries ...Entry[K, V]) (Handle[K, V], error) {
	return m.InsertEntries(0, entries...)
}

// PushFrontMap prepends the entries of other, keeping their order.
func (m *VectorMap[K, V]) PushFrontMap(other *VectorMap[K, V]) (Handle[K, V], error) {
	return m.InsertMap(0, other)
}
