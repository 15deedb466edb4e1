package conv

import (
	"fmt"
	"math"
)

// IntToUint32 converts int to uint32 safely.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (negative)", v)
	}
	// On 64-bit systems, int can exceed uint32 max; on 32-bit, this is always false
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (too large)", v)
	}
	return uint32(v), nil
}

// Uint32ToInt converts uint32 to int safely.
func Uint32ToInt(v uint32) (int, error) {
	if uint64(v) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}

// SlotsToBytes returns count*slotSize as int64, failing on negative counts
// and on products that do not fit.
func SlotsToBytes(count int, slotSize uintptr) (int64, error) {
	if count < 0 {
		return 0, fmt.Errorf("integer overflow: %d slots (negative)", count)
	}
	if count == 0 || slotSize == 0 {
		return 0, nil
	}
	if uint64(slotSize) > math.MaxInt64 || uint64(count) > math.MaxInt64/uint64(slotSize) {
		return 0, fmt.Errorf("integer overflow: %d slots of %d bytes exceed int64", count, slotSize)
	}
	return int64(count) * int64(slotSize), nil
}
