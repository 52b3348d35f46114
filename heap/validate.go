package heap

import (
	"github.com/dolthub/swiss"
	"github.com/pkg/errors"
	"github.com/vkngwrapper/brkalloc/memutils"
)

var _ memutils.Validatable = &Allocator{}

// Validate performs internal consistency checks on the block chain: that links agree in both
// directions, that blocks are contiguous and aligned, that the last block ends at the break and
// that no two neighboring blocks are both free. These checks walk the whole chain twice and
// should generally only be run for diagnostic purposes.
func (a *Allocator) Validate() error {
	if a.base == noBlock {
		return nil
	}

	brk := a.segment.Break()
	if int(a.base) < 0 || int(a.base) > brk-memutils.HeaderSize {
		return errors.Errorf("the heap base at offset %d lies outside the segment break %d", a.base, brk)
	}

	if a.hdr(a.base).prev() != noBlock {
		return errors.Errorf("the first block at offset %d has a previous block", a.base)
	}

	// Forward pass: record each block's position so the backward pass can check it
	positions := swiss.NewMap[blockRef, int](64)
	expected := a.base
	tail := noBlock
	prevFree := false

	for block := a.base; block != noBlock; {
		if block != expected {
			return errors.Errorf("block at offset %d does not start where the previous block ends (%d)", block, expected)
		}
		if int(block) > brk-memutils.HeaderSize {
			return errors.Errorf("block at offset %d has a header past the segment break %d", block, brk)
		}
		if err := memutils.CheckAligned(int(block), "block offset"); err != nil {
			return err
		}

		h := a.hdr(block)
		size := h.size()
		if size <= 0 || size%memutils.Alignment != 0 {
			return errors.Errorf("block at offset %d has invalid size %d", block, size)
		}
		if size > brk-int(block)-memutils.HeaderSize {
			return errors.Errorf("block at offset %d with size %d runs past the segment break %d", block, size, brk)
		}

		if h.isFree() && prevFree {
			return errors.Errorf("block at offset %d is free but was not merged into the free block before it", block)
		}

		end := int(block) + memutils.HeaderSize + size
		next := h.next()
		if next != noBlock && int(next) != end {
			return errors.Errorf("block at offset %d lists the block at offset %d as its next block, but it ends at %d", block, next, end)
		}
		if next != noBlock && end > brk-memutils.HeaderSize {
			return errors.Errorf("block at offset %d lists a next block, but the segment break %d leaves no room for its header", block, brk)
		}
		if next != noBlock && a.hdr(next).prev() != block {
			return errors.Errorf("block at offset %d lists the block at offset %d as its next block, but the reverse reference is broken", block, next)
		}

		positions.Put(block, positions.Count())
		expected = blockRef(end)
		prevFree = h.isFree()
		tail = block
		block = next
	}

	if int(expected) != brk {
		return errors.Errorf("the last block ends at offset %d, but the segment break is at %d", expected, brk)
	}

	// Backward pass. Only headers of blocks found by the forward pass are read.
	position := positions.Count() - 1
	for block := tail; block != noBlock; block = a.hdr(block).prev() {
		recorded, ok := positions.Get(block)
		if !ok {
			return errors.Errorf("block at offset %d is reachable backward but not forward", block)
		}
		if recorded != position {
			return errors.Errorf("block at offset %d is block %d walking forward but block %d walking backward", block, recorded, position)
		}
		position--
	}

	if position != -1 {
		return errors.Errorf("walking backward from the tail reached %d fewer blocks than walking forward", position+1)
	}

	return nil
}
