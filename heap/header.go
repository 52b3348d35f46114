package heap

import (
	"encoding/binary"

	"github.com/vkngwrapper/brkalloc/memutils"
)

// Block header layout, little endian, memutils.HeaderSize bytes in total
const (
	sizeField  = 0
	freeField  = 8
	nextField  = 16
	prevField  = 24
	fieldWidth = 8
)

// blockRef is the offset of a block header from the segment base
type blockRef int

// noBlock marks the absence of a block in the chain links and the heap base
const noBlock blockRef = -1

func (b blockRef) payload() Ptr {
	return Ptr(int(b) + memutils.HeaderSize)
}

func refFromPtr(p Ptr) blockRef {
	return blockRef(int(p) - memutils.HeaderSize)
}

// header is a view of the memutils.HeaderSize bytes of one block header inside the segment
type header []byte

func (h header) size() int {
	return int(binary.LittleEndian.Uint64(h[sizeField : sizeField+fieldWidth]))
}

func (h header) setSize(size int) {
	binary.LittleEndian.PutUint64(h[sizeField:sizeField+fieldWidth], uint64(size))
}

func (h header) isFree() bool {
	return binary.LittleEndian.Uint32(h[freeField:freeField+4]) != 0
}

func (h header) markFree() {
	binary.LittleEndian.PutUint32(h[freeField:freeField+4], 1)
}

func (h header) markTaken() {
	binary.LittleEndian.PutUint32(h[freeField:freeField+4], 0)
}

func (h header) next() blockRef {
	return blockRef(int64(binary.LittleEndian.Uint64(h[nextField : nextField+fieldWidth])))
}

func (h header) setNext(b blockRef) {
	binary.LittleEndian.PutUint64(h[nextField:nextField+fieldWidth], uint64(int64(b)))
}

func (h header) prev() blockRef {
	return blockRef(int64(binary.LittleEndian.Uint64(h[prevField : prevField+fieldWidth])))
}

func (h header) setPrev(b blockRef) {
	binary.LittleEndian.PutUint64(h[prevField:prevField+fieldWidth], uint64(int64(b)))
}

// init writes a complete header, zeroing the reserved word
func (h header) init(size int, free bool, next, prev blockRef) {
	clear(h)
	h.setSize(size)
	if free {
		h.markFree()
	}
	h.setNext(next)
	h.setPrev(prev)
}
