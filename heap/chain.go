package heap

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/brkalloc/memutils"
	"golang.org/x/exp/slog"
)

// findFreeBlock walks the chain from the base and returns the first free block with at
// least size bytes of payload, along with the last block visited
func (a *Allocator) findFreeBlock(size int) (found blockRef, last blockRef) {
	last = noBlock

	for block := a.base; block != noBlock; {
		h := a.hdr(block)
		last = block

		if h.isFree() && h.size() >= size {
			return block, last
		}

		block = h.next()
	}

	return noBlock, last
}

// blockEnd returns the offset just past block's payload
func (a *Allocator) blockEnd(block blockRef) int {
	return int(block) + memutils.HeaderSize + a.hdr(block).size()
}

// extendHeap grows the segment by a header plus size bytes and links the new in-use block
// after last. The chain is untouched if the segment cannot grow, or if the break is no longer
// at the end of last.
func (a *Allocator) extendHeap(last blockRef, size int) (blockRef, error) {
	if size > math.MaxInt-memutils.HeaderSize {
		return noBlock, errors.Wrapf(memutils.ErrOutOfMemory, "a block of %d bytes does not fit in the heap", size)
	}

	if last != noBlock {
		end, brk := a.blockEnd(last), a.segment.Break()
		if end != brk {
			a.logger.Warn("segment break is not at the end of the heap", slog.Int("HeapEnd", end), slog.Int("Break", brk))
			return noBlock, errors.Wrapf(memutils.ErrBreakMoved, "heap ends at %d but the break is at %d", end, brk)
		}
	}

	total := memutils.HeaderSize + size
	prevBreak, err := a.segment.Sbrk(total)
	if err != nil {
		a.logger.Warn("failed to extend heap segment", slog.Int("Bytes", total), slog.Any("error", err))
		return noBlock, errors.Wrapf(errors.Mark(err, memutils.ErrOutOfMemory), "failed to extend heap by %d bytes", total)
	}
	memutils.DebugCheckAligned(prevBreak, "previous break")

	block := blockRef(prevBreak)
	a.hdr(block).init(size, false, noBlock, last)
	if last != noBlock {
		a.hdr(last).setNext(block)
	}

	return block, nil
}

// splitBlock shrinks block to size bytes of payload if the excess is at least
// memutils.SplitThreshold, turning the excess into a free block linked right after it.
// It returns true if a split happened.
func (a *Allocator) splitBlock(block blockRef, size int) bool {
	h := a.hdr(block)
	if h.size()-size < memutils.SplitThreshold {
		return false
	}

	next := h.next()
	remainder := blockRef(int(block) + memutils.HeaderSize + size)
	a.hdr(remainder).init(h.size()-size-memutils.HeaderSize, true, next, block)
	if next != noBlock {
		a.hdr(next).setPrev(remainder)
	}

	h.setNext(remainder)
	h.setSize(size)

	return true
}

// mergeNext absorbs the block following block if that block is free
func (a *Allocator) mergeNext(block blockRef) bool {
	h := a.hdr(block)
	next := h.next()
	if next == noBlock {
		return false
	}

	nh := a.hdr(next)
	if !nh.isFree() {
		return false
	}

	after := nh.next()
	h.setSize(h.size() + memutils.HeaderSize + nh.size())
	h.setNext(after)
	if after != noBlock {
		a.hdr(after).setPrev(block)
	}

	return true
}

// releaseBlock marks block free, coalesces it with free neighbors and trims the heap if the
// result is the last block
func (a *Allocator) releaseBlock(block blockRef) {
	h := a.hdr(block)
	h.markFree()

	a.mergeNext(block)

	prev := h.prev()
	if prev != noBlock && a.hdr(prev).isFree() {
		a.mergeNext(prev)
		block = prev
	}

	a.trimTail(block)
}

// trimTail retracts the break over block if it is the last block of the heap. If the segment
// refuses, the block stays in the chain as a free tail.
func (a *Allocator) trimTail(block blockRef) {
	if a.flags&CreateNoTrim != 0 {
		return
	}

	h := a.hdr(block)
	if h.next() != noBlock {
		return
	}

	end, brk := a.blockEnd(block), a.segment.Break()
	if end != brk {
		a.logger.Warn("segment break is not at the end of the heap", slog.Int("HeapEnd", end), slog.Int("Break", brk))
		return
	}

	prev := h.prev()
	err := a.segment.Brk(int(block))
	if err != nil {
		a.logger.Warn("failed to retract heap break", slog.Int("Offset", int(block)), slog.Any("error", err))
		return
	}

	if prev != noBlock {
		a.hdr(prev).setNext(noBlock)
	} else {
		a.base = noBlock
	}
}
