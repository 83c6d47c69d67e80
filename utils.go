package probetable

import (
	"math"
	"math/bits"
	"unsafe"
)

// Returns the next power of 2 for the given value `v`.
func NextPowerOf2(v uint32) uint32 {
	if v <= 1 {
		return 1
	}

	return uint32(1) << min(bits.Len32(v-1), 31)
}

// Estimates capacity (number of slots) from the given memory size in bytes.
// The result is rounded down to a power of 2, so a table grown from it
// stays within size.
func CapacityFromSize[V any](size uintptr) int {
	numEntries := size / unsafe.Sizeof(entry[V]{})
	if numEntries == 0 {
		return 0
	}

	return 1 << (bits.Len64(uint64(numEntries)) - 1)
}

// capacityFor returns the smallest power of 2 capacity, at least
// minCapacity, that holds hint keys under the maximum load factor.
func capacityFor(hint int) int {
	capacity := max(minCapacity, int(NextPowerOf2(uint32(min(hint, math.MaxInt32)))))
	for hint*maxLoadDen > capacity*maxLoadNum {
		capacity *= 2
	}

	return capacity
}
