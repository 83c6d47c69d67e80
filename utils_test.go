package probetable

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestNextPowerOf2(t *testing.T) {
	tests := []struct {
		input uint32
		want  uint32
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{8, 8},
		{9, 16},
		{1000, 1024},
		{1 << 31, 1 << 31},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, NextPowerOf2(tt.input), "NextPowerOf2(%d)", tt.input)
	}
}

func TestCapacityFromSize(t *testing.T) {
	t.Run("Value", func(t *testing.T) {
		sizeOfEntry := unsafe.Sizeof(entry[Value]{})

		tests := []struct {
			name string
			size uintptr
			want int
		}{
			{"zero", 0, 0},
			{"less than one entry", sizeOfEntry - 1, 0},
			{"exactly one entry", sizeOfEntry, 1},
			{"three entries", sizeOfEntry * 3, 2},
			{"eight entries", sizeOfEntry * 8, 8},
			{"just under sixteen", sizeOfEntry*16 - 1, 8},
			{"1MB", 1024 * 1024, int(NextPowerOf2(uint32(1024*1024/sizeOfEntry+1)) / 2)},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				require.Equal(t, tt.want, CapacityFromSize[Value](tt.size))
			})
		}
	})

	t.Run("struct{}", func(t *testing.T) {
		sizeOfEntry := unsafe.Sizeof(entry[struct{}]{})

		got := CapacityFromSize[struct{}](sizeOfEntry * 40)
		require.Equal(t, 32, got)
	})

	t.Run("usage with New", func(t *testing.T) {
		sizeOfEntry := unsafe.Sizeof(entry[int]{})

		capacity := CapacityFromSize[int](sizeOfEntry * 100)
		require.Equal(t, 64, capacity)

		// 64 slots * 0.75 load factor = 48 keys
		tb := New(WithCapacity[int](capacity * maxLoadNum / maxLoadDen))
		require.Equal(t, 64, tb.Capacity())
		require.Equal(t, 48, tb.EffectiveCapacity())
	})
}
