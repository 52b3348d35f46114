// Package collections holds small data structures that keep all of their storage inside a
// brk heap: a row-table integer matrix, a singly linked integer list and a growable integer
// array. They exist to drive the heap through realistic allocate, release and resize
// sequences.
//
// Integers are stored as 4-byte little-endian values and links between blocks as 8-byte
// little-endian heap.Ptr values.
package collections

import (
	"encoding/binary"

	"github.com/vkngwrapper/brkalloc/heap"
)

//go:generate mockgen -destination mocks/allocator.go -package mock_collections github.com/vkngwrapper/brkalloc/collections Allocator

// Allocator is the part of *heap.Allocator the collections depend on
type Allocator interface {
	Allocate(size int) (heap.Ptr, error)
	Release(p heap.Ptr)
	AllocateZeroed(count, elementSize int) (heap.Ptr, error)
	Resize(p heap.Ptr, size int) (heap.Ptr, error)
	Bytes(p heap.Ptr) []byte
}

var _ Allocator = &heap.Allocator{}

const (
	intSize  = 4
	linkSize = 8
)

func readInt(b []byte, index int) int32 {
	offset := index * intSize
	return int32(binary.LittleEndian.Uint32(b[offset : offset+intSize]))
}

func writeInt(b []byte, index int, value int32) {
	offset := index * intSize
	binary.LittleEndian.PutUint32(b[offset:offset+intSize], uint32(value))
}

func readLink(b []byte, offset int) heap.Ptr {
	return heap.Ptr(int64(binary.LittleEndian.Uint64(b[offset : offset+linkSize])))
}

func writeLink(b []byte, offset int, p heap.Ptr) {
	binary.LittleEndian.PutUint64(b[offset:offset+linkSize], uint64(int64(p)))
}
