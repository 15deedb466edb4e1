package vectormap

import (
	"github.com/hupe1980/vectormap/internal/resource"
)

// MemoryAcquirer is an interface for acquiring memory.
//
// AcquireMemory must not block; it either reserves bytes or returns an error.
type MemoryAcquirer interface {
	AcquireMemory(bytes int64) error
	ReleaseMemory(bytes int64)
}

// MemoryBudget is a MemoryAcquirer with a hard byte limit.
// It is safe for concurrent use and may be shared by many maps.
type MemoryBudget struct {
	rc *resource.Controller
}

// NewMemoryBudget creates a budget of limitBytes. A limit of 0 only tracks usage.
func NewMemoryBudget(limitBytes int64) *MemoryBudget {
	return &MemoryBudget{
		rc: resource.NewController(resource.Config{MemoryLimitBytes: limitBytes}),
	}
}

// AcquireMemory implements MemoryAcquirer.
// It returns resource.ErrMemoryLimitExceeded when the limit would be exceeded.
func (b *MemoryBudget) AcquireMemory(bytes int64) error {
	return b.rc.AcquireMemory(bytes)
}

// ReleaseMemory implements MemoryAcquirer.
func (b *MemoryBudget) ReleaseMemory(bytes int64) {
	b.rc.ReleaseMemory(bytes)
}

// Usage returns the bytes currently held.
func (b *MemoryBudget) Usage() int64 {
	return b.rc.MemoryUsage()
}

// Peak returns the highest usage seen.
func (b *MemoryBudget) Peak() int64 {
	return b.rc.PeakMemoryUsage()
}

// Limit returns the configured limit (0 if unlimited).
func (b *MemoryBudget) Limit() int64 {
	return b.rc.MemoryLimit()
}
