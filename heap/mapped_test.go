//go:build linux || darwin || freebsd

package heap_test

import (
	"os"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/brkalloc/heap"
	"github.com/vkngwrapper/brkalloc/memutils"
	"github.com/vkngwrapper/brkalloc/segment"
)

func TestHeapOverMappedSegment(t *testing.T) {
	pageSize := os.Getpagesize()

	seg, err := segment.NewMapped(4 * pageSize)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, seg.Close())
	}()

	allocator, err := heap.New(nil, seg, heap.CreateOptions{Flags: heap.CreateValidate})
	require.NoError(t, err)

	small, err := allocator.Allocate(100)
	require.NoError(t, err)
	fillPattern(allocator.Bytes(small), 3)

	large, err := allocator.AllocateZeroed(pageSize, 2)
	require.NoError(t, err)
	require.Equal(t, make([]byte, 2*pageSize), allocator.Bytes(large))
	require.Greater(t, seg.Committed(), 2*pageSize)

	_, err = allocator.Allocate(4 * pageSize)
	require.True(t, errors.Is(err, memutils.ErrOutOfMemory))

	allocator.Release(large)
	require.Equal(t, memutils.HeaderSize+100, seg.Break())
	require.Equal(t, pageSize, seg.Committed())
	requirePattern(t, allocator.Bytes(small), 3)

	allocator.Release(small)
	require.True(t, allocator.IsEmpty())
	require.Equal(t, 0, seg.Committed())
}
