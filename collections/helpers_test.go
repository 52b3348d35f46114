package collections_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	mock_collections "github.com/vkngwrapper/brkalloc/collections/mocks"
	"github.com/vkngwrapper/brkalloc/heap"
	"github.com/vkngwrapper/brkalloc/segment"
	"go.uber.org/mock/gomock"
)

func newHeap(t *testing.T, limit int) *heap.Allocator {
	t.Helper()

	allocator, err := heap.New(nil, segment.NewMemory(limit), heap.CreateOptions{Flags: heap.CreateValidate})
	require.NoError(t, err)

	return allocator
}

// delegatingAllocator returns a mock that forwards Allocate, AllocateZeroed and Bytes to
// allocator. Tests register their own Release and Resize expectations.
func delegatingAllocator(ctrl *gomock.Controller, allocator *heap.Allocator) *mock_collections.MockAllocator {
	m := mock_collections.NewMockAllocator(ctrl)
	m.EXPECT().Bytes(gomock.Any()).DoAndReturn(allocator.Bytes).AnyTimes()
	m.EXPECT().Allocate(gomock.Any()).DoAndReturn(allocator.Allocate).AnyTimes()
	m.EXPECT().AllocateZeroed(gomock.Any(), gomock.Any()).DoAndReturn(allocator.AllocateZeroed).AnyTimes()
	return m
}
