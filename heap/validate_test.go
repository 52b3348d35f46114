package heap_test

import (
	"encoding/binary"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/brkalloc/heap"
	"github.com/vkngwrapper/brkalloc/memutils"
	"github.com/vkngwrapper/brkalloc/segment"
	mock_segment "github.com/vkngwrapper/brkalloc/segment/mocks"
	"go.uber.org/mock/gomock"
)

func newUnvalidatedAllocator(t *testing.T) (*heap.Allocator, *segment.MemorySegment) {
	seg := segment.NewMemory(4096)
	allocator, err := heap.New(nil, seg, heap.CreateOptions{})
	require.NoError(t, err)

	return allocator, seg
}

func TestValidateEmptyAndPopulated(t *testing.T) {
	allocator, _ := newUnvalidatedAllocator(t)
	require.NoError(t, allocator.Validate())

	a, err := allocator.Allocate(12)
	require.NoError(t, err)
	b, err := allocator.Allocate(40)
	require.NoError(t, err)
	_, err = allocator.Allocate(8)
	require.NoError(t, err)
	allocator.Release(a)
	require.NoError(t, allocator.Validate())

	allocator.Release(b)
	require.NoError(t, allocator.Validate())
}

func TestValidateDetectsBadSize(t *testing.T) {
	allocator, seg := newUnvalidatedAllocator(t)

	_, err := allocator.Allocate(12)
	require.NoError(t, err)
	_, err = allocator.Allocate(12)
	require.NoError(t, err)

	binary.LittleEndian.PutUint64(seg.Bytes()[0:8], 13)
	require.ErrorContains(t, allocator.Validate(), "invalid size 13")
}

func TestValidateDetectsBrokenBackLink(t *testing.T) {
	allocator, seg := newUnvalidatedAllocator(t)

	_, err := allocator.Allocate(12)
	require.NoError(t, err)
	second, err := allocator.Allocate(12)
	require.NoError(t, err)

	prevField := int(second) - memutils.HeaderSize + 24
	binary.LittleEndian.PutUint64(seg.Bytes()[prevField:prevField+8], uint64(1000))
	require.ErrorContains(t, allocator.Validate(), "reverse reference is broken")
}

func TestValidateDetectsUnmergedFreeBlocks(t *testing.T) {
	allocator, seg := newUnvalidatedAllocator(t)

	a, err := allocator.Allocate(12)
	require.NoError(t, err)
	b, err := allocator.Allocate(12)
	require.NoError(t, err)
	_, err = allocator.Allocate(12)
	require.NoError(t, err)

	for _, p := range []heap.Ptr{a, b} {
		freeField := int(p) - memutils.HeaderSize + 8
		binary.LittleEndian.PutUint32(seg.Bytes()[freeField:freeField+4], 1)
	}
	require.ErrorContains(t, allocator.Validate(), "was not merged")
}

func TestValidateDetectsBreakMismatch(t *testing.T) {
	allocator, seg := newUnvalidatedAllocator(t)

	_, err := allocator.Allocate(12)
	require.NoError(t, err)

	_, err = seg.Sbrk(8)
	require.NoError(t, err)
	require.ErrorContains(t, allocator.Validate(), "segment break")
}

func TestCreateValidatePanicsOnCorruption(t *testing.T) {
	allocator, seg := newTestAllocator(t, 4096, 0)

	_, err := allocator.Allocate(12)
	require.NoError(t, err)

	binary.LittleEndian.PutUint64(seg.Bytes()[0:8], 1<<20)
	require.Panics(t, func() {
		_, _ = allocator.Allocate(4)
	})
}

func TestSegmentGrowthFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	seg := mock_segment.NewMockSegment(ctrl)
	seg.EXPECT().Break().Return(0)
	seg.EXPECT().Sbrk(memutils.HeaderSize+16).Return(0, errors.New("ENOMEM"))

	allocator, err := heap.New(nil, seg, heap.CreateOptions{})
	require.NoError(t, err)

	p, err := allocator.Allocate(13)
	require.Equal(t, heap.Nil, p)
	require.True(t, errors.Is(err, memutils.ErrOutOfMemory))
	require.ErrorContains(t, err, "ENOMEM")
	require.True(t, allocator.IsEmpty())
}

func TestSegmentRetractFailureKeepsFreeTail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mem := make([]byte, 1024)
	brk := 0

	seg := mock_segment.NewMockSegment(ctrl)
	seg.EXPECT().Break().DoAndReturn(func() int { return brk }).AnyTimes()
	seg.EXPECT().Bytes().DoAndReturn(func() []byte { return mem[:brk] }).AnyTimes()
	seg.EXPECT().Sbrk(gomock.Any()).DoAndReturn(func(delta int) (int, error) {
		prev := brk
		brk += delta
		return prev, nil
	}).AnyTimes()
	seg.EXPECT().Brk(memutils.HeaderSize + 8).Return(errors.New("EPERM")).Times(1)

	allocator, err := heap.New(nil, seg, heap.CreateOptions{Flags: heap.CreateValidate})
	require.NoError(t, err)

	a, err := allocator.Allocate(8)
	require.NoError(t, err)
	b, err := allocator.Allocate(16)
	require.NoError(t, err)

	allocator.Release(b)
	require.Equal(t, 2*memutils.HeaderSize+24, brk)

	stats := detailedStats(allocator)
	require.Equal(t, 2, stats.BlockCount)
	require.Equal(t, 1, stats.FreeRangeCount)

	c, err := allocator.Allocate(12)
	require.NoError(t, err)
	require.Equal(t, b, c)
	require.Equal(t, 16, allocator.UsableSize(c))
	require.NotEqual(t, a, c)
}

func TestValidateReportsOutOfRangeNextLink(t *testing.T) {
	for _, link := range []int64{1 << 20, -8, 4} {
		allocator, seg := newUnvalidatedAllocator(t)

		_, err := allocator.Allocate(12)
		require.NoError(t, err)
		_, err = allocator.Allocate(12)
		require.NoError(t, err)

		binary.LittleEndian.PutUint64(seg.Bytes()[16:24], uint64(link))

		require.NotPanics(t, func() {
			err = allocator.Validate()
		}, "next link %d", link)
		require.ErrorContains(t, err, "as its next block, but it ends at 44", "next link %d", link)
	}
}

func TestValidateReportsNextLinkPastBreak(t *testing.T) {
	allocator, seg := newUnvalidatedAllocator(t)

	_, err := allocator.Allocate(12)
	require.NoError(t, err)
	_, err = allocator.Allocate(12)
	require.NoError(t, err)

	// The second block claims a successor right at the break
	second := memutils.HeaderSize + 12
	binary.LittleEndian.PutUint64(seg.Bytes()[second+16:second+24], uint64(2*(memutils.HeaderSize+12)))

	require.NotPanics(t, func() {
		err = allocator.Validate()
	})
	require.ErrorContains(t, err, "leaves no room for its header")
}
