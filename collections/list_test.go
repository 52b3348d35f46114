package collections_test

import (
	"bytes"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/brkalloc/collections"
	"github.com/vkngwrapper/brkalloc/heap"
	"github.com/vkngwrapper/brkalloc/memutils"
	"go.uber.org/mock/gomock"
)

func TestIntListDemoSequence(t *testing.T) {
	allocator := newHeap(t, 4096)
	list := collections.NewIntList(allocator)

	require.NoError(t, list.Append(10))
	require.NoError(t, list.Push(20))
	require.NoError(t, list.Push(30))
	require.NoError(t, list.Append(40))

	var out bytes.Buffer
	require.NoError(t, list.Print(&out))
	require.NoError(t, list.Delete(20))
	require.NoError(t, list.Print(&out))
	require.Equal(t, "30 -> 20 -> 10 -> 40 -> NULL\n30 -> 10 -> 40 -> NULL\n", out.String())

	require.Equal(t, 3, list.Len())

	list.Free()
	require.Equal(t, 0, list.Len())
	require.True(t, allocator.IsEmpty())
}

func TestIntListDeleteReleasesOnlyThatNode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	allocator := newHeap(t, 4096)
	mock := delegatingAllocator(ctrl, allocator)

	var released []heap.Ptr
	mock.EXPECT().Release(gomock.Any()).Do(func(p heap.Ptr) {
		released = append(released, p)
		allocator.Release(p)
	}).AnyTimes()

	list := collections.NewIntList(mock)
	require.NoError(t, list.Append(1))
	require.NoError(t, list.Append(2))
	require.NoError(t, list.Append(3))

	first := heap.Ptr(memutils.HeaderSize)
	second := first + heap.Ptr(16+memutils.HeaderSize)
	third := second + heap.Ptr(16+memutils.HeaderSize)

	require.NoError(t, list.Delete(2))
	require.Equal(t, []heap.Ptr{second}, released)
	require.Equal(t, []int32{1, 3}, list.Values())

	require.NoError(t, list.Delete(1))
	require.Equal(t, []heap.Ptr{second, first}, released)
	require.Equal(t, []int32{3}, list.Values())

	list.Free()
	require.Equal(t, []heap.Ptr{second, first, third}, released)
	require.True(t, allocator.IsEmpty())
}

func TestIntListDeleteMissingKey(t *testing.T) {
	allocator := newHeap(t, 4096)
	list := collections.NewIntList(allocator)

	require.True(t, errors.Is(list.Delete(1), collections.ErrKeyNotFound))

	require.NoError(t, list.Push(1))
	require.True(t, errors.Is(list.Delete(2), collections.ErrKeyNotFound))
	require.Equal(t, []int32{1}, list.Values())
}
