// Package resource implements the memory budget shared by container buffers.
//
// Memory tracking uses a weighted semaphore for hard limits and atomic counters
// for usage tracking. AcquireMemory is non-blocking and returns immediately
// with ErrMemoryLimitExceeded if the limit would be exceeded:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 1 << 30, // 1GB limit
//	})
//
//	if err := rc.AcquireMemory(1024*1024); err != nil {
//	    // ErrMemoryLimitExceeded - the caller keeps its old buffer
//	}
//	defer rc.ReleaseMemory(1024*1024)
//
// # Thread Safety
//
// All Controller methods are safe for concurrent use, so one budget can be
// shared by many containers even though each container is single-threaded.
//
// # Nil Safety
//
// All methods handle nil Controller gracefully - they become no-ops.
package resource
