// Package vectormap provides VectorMap, an insertion-ordered multimap stored
// in a single contiguous buffer that the map manages itself.
//
// # Quick Start
//
//	m, _ := vectormap.FromEntries([]vectormap.Entry[string, int]{
//	    {Key: "Cero", Value: 0},
//	    {Key: "Uno", Value: 1},
//	}, vectormap.WithDelta(3))
//
//	m.PushBack("Dos", 2)
//	m.PushFront("Menos", -1)
//
//	v, ok := m.Value("Uno")        // 1, true
//	e, err := m.At(0)              // {Menos -1}, nil
//	_, pos := m.Find("Tres")       // pos == vectormap.NPos
//
// # Duplicate Keys
//
// Keys are not unique. Entries keep the order they were inserted in, and the
// first match of a key is the one with the lowest position:
//
//	m.PushBack("Dos", 22)
//	m.Positions("Dos")      // [3 4]
//	m.FindNth("Dos", 2)     // second match, position 4
//	m.EraseAll("Dos")       // 2
//
// Lookups are linear scans. There is no hash or sorted index, so lookup cost
// grows with Len and ties among duplicates always resolve by position.
//
// # Capacity
//
// The buffer grows in multiples of the growth delta D (WithDelta, default 100).
// Reserve(n) sets the capacity to ((n / D) + 1) * D; an insertion that would
// exceed the capacity reserves Len + inserted first. Shrink trims the capacity
// to Len. Erasing never shrinks.
//
// A MemoryBudget (WithMemoryLimit, WithMemoryAcquirer) caps the bytes held by
// buffers. When a budget refuses an allocation the operation fails with
// ErrAllocationFailed and the map is left exactly as it was.
//
// # Handles
//
// Insertions and lookups return Handles. A handle is bound to the map
// generation it was issued for; after any insert, erase, swap, move, clear or
// reallocation it reports ErrStaleHandle instead of reading a shifted entry.
//
// # Concurrency
//
// A VectorMap is not safe for concurrent use. A MemoryBudget and the
// BasicMetricsCollector may be shared across maps and goroutines.
package vectormap
