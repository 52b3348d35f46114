package heap_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/brkalloc/heap"
	"github.com/vkngwrapper/brkalloc/memutils"
	"github.com/vkngwrapper/brkalloc/segment"
)

func newTestAllocator(t *testing.T, limit int, flags heap.CreateFlags) (*heap.Allocator, *segment.MemorySegment) {
	t.Helper()

	seg := segment.NewMemory(limit)
	allocator, err := heap.New(nil, seg, heap.CreateOptions{Flags: flags | heap.CreateValidate})
	require.NoError(t, err)

	return allocator, seg
}

func detailedStats(allocator *heap.Allocator) memutils.DetailedStatistics {
	var stats memutils.DetailedStatistics
	stats.Clear()
	allocator.AddDetailedStatistics(&stats)
	return stats
}

func fillPattern(b []byte, seed byte) {
	for i := range b {
		b[i] = seed + byte(i)
	}
}

func requirePattern(t *testing.T, b []byte, seed byte) {
	t.Helper()

	for i := range b {
		if b[i] != seed+byte(i) {
			require.Failf(t, "payload corrupted", "byte %d is %#x, expected %#x", i, b[i], seed+byte(i))
		}
	}
}
