package heap

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/brkalloc/memutils"
	"github.com/vkngwrapper/brkalloc/segment"
	"golang.org/x/exp/slog"
)

// Ptr is a payload handle: the offset of the first payload byte from the segment base
type Ptr int

// Nil is the absent pointer. No payload can start at offset 0 because a block header always
// precedes it.
const Nil Ptr = 0

// CreateOptions contains optional settings when creating an allocator. The zero value is valid.
type CreateOptions struct {
	// Flags indicates specific allocator behaviors to activate or deactivate
	Flags CreateFlags
}

// Allocator carves variable-size blocks out of a single segment. Blocks form a doubly linked
// chain in ascending address order: every block is a memutils.HeaderSize byte header followed
// by its payload, and a block's successor starts right after its payload. Requests are served
// first-fit, oversized blocks are split, released neighbors are coalesced, and a free block
// at the end of the heap is handed back to the segment by retracting the break.
//
// Allocator is not safe for concurrent use. Callers sharing one between goroutines must
// serialize every call, including read-only ones such as Bytes, themselves.
//
// Passing a Ptr that did not come from this allocator, or one that was already released,
// to Release or Resize is undefined behavior.
type Allocator struct {
	logger  *slog.Logger
	segment segment.Segment
	flags   CreateFlags

	base blockRef
}

// New creates an empty Allocator that grows the provided segment.
//
// logger - Debug messages for every call and warnings for segment failures go here. If nil,
// slog.Default() is used
//
// seg - The segment whose program break this allocator moves. Its current break must be a
// multiple of memutils.Alignment
//
// options - Optional parameters: it is valid to leave all the fields blank
func New(logger *slog.Logger, seg segment.Segment, options CreateOptions) (*Allocator, error) {
	if seg == nil {
		return nil, errors.New("heap.New requires a segment")
	}

	if logger == nil {
		logger = slog.Default()
	}

	err := memutils.CheckAligned(seg.Break(), "segment break")
	if err != nil {
		return nil, err
	}

	return &Allocator{
		logger:  logger,
		segment: seg,
		flags:   options.Flags,
		base:    noBlock,
	}, nil
}

func (a *Allocator) hdr(b blockRef) header {
	end := int(b) + memutils.HeaderSize
	return header(a.segment.Bytes()[b:end:end])
}

// Allocate returns a block with at least size bytes of payload. size is rounded up to a multiple
// of memutils.Alignment. A size of zero or less fails with memutils.ErrInvalidSize, and failing
// to grow the segment fails with memutils.ErrOutOfMemory; in both cases the heap is unchanged.
func (a *Allocator) Allocate(size int) (Ptr, error) {
	a.logger.Debug("Allocator::Allocate", slog.Int("Size", size))

	p, err := a.allocate(size)
	a.checkChain()

	return p, err
}

func (a *Allocator) allocate(size int) (Ptr, error) {
	size, err := memutils.AlignSize(size)
	if err != nil {
		return Nil, err
	}

	if a.base == noBlock {
		block, err := a.extendHeap(noBlock, size)
		if err != nil {
			return Nil, err
		}

		a.base = block
		return block.payload(), nil
	}

	block, last := a.findFreeBlock(size)
	if block == noBlock {
		block, err = a.extendHeap(last, size)
		if err != nil {
			return Nil, err
		}

		return block.payload(), nil
	}

	a.splitBlock(block, size)
	a.hdr(block).markTaken()

	return block.payload(), nil
}

// Release hands a block back to the allocator. Releasing Nil does nothing. The block is merged
// with free neighbors, and if it ends up at the end of the heap the break is retracted over it.
func (a *Allocator) Release(p Ptr) {
	a.logger.Debug("Allocator::Release", slog.Int("Ptr", int(p)))

	if p == Nil {
		return
	}

	a.releaseBlock(refFromPtr(p))
	a.checkChain()
}

// AllocateZeroed allocates room for count elements of elementSize bytes each and zeroes the
// entire payload. A product that does not fit in an int fails with memutils.ErrSizeOverflow
// and a product of zero fails with memutils.ErrInvalidSize.
func (a *Allocator) AllocateZeroed(count, elementSize int) (Ptr, error) {
	a.logger.Debug("Allocator::AllocateZeroed", slog.Int("Count", count), slog.Int("ElementSize", elementSize))

	total, err := memutils.CheckedMul(count, elementSize)
	if err != nil {
		return Nil, err
	}

	p, err := a.allocate(total)
	a.checkChain()
	if err != nil {
		return Nil, err
	}

	clear(a.Bytes(p))
	return p, nil
}

// Resize changes the payload size of the block at p to at least size bytes and returns the
// block's new location.
//
// A Nil p behaves like Allocate, and a size of 0 releases the block and returns Nil. Blocks that
// are already large enough keep their location and give back any excess, as do blocks that can
// absorb a free successor. Otherwise a new block is allocated, the old payload is copied into it
// and the old block is released. If that allocation fails the old block is left untouched.
func (a *Allocator) Resize(p Ptr, size int) (Ptr, error) {
	a.logger.Debug("Allocator::Resize", slog.Int("Ptr", int(p)), slog.Int("Size", size))

	newPtr, err := a.resize(p, size)
	a.checkChain()

	return newPtr, err
}

func (a *Allocator) resize(p Ptr, size int) (Ptr, error) {
	if p == Nil {
		return a.allocate(size)
	}

	if size == 0 {
		a.releaseBlock(refFromPtr(p))
		return Nil, nil
	}

	size, err := memutils.AlignSize(size)
	if err != nil {
		return Nil, err
	}

	block := refFromPtr(p)
	h := a.hdr(block)

	if h.size() >= size {
		if a.splitBlock(block, size) {
			a.releaseBlock(h.next())
		}

		return p, nil
	}

	next := h.next()
	if next != noBlock {
		nh := a.hdr(next)
		if nh.isFree() && h.size()+memutils.HeaderSize+nh.size() >= size {
			a.mergeNext(block)
			if a.splitBlock(block, size) {
				a.releaseBlock(h.next())
			}

			return p, nil
		}
	}

	newPtr, err := a.allocate(size)
	if err != nil {
		return Nil, err
	}

	copy(a.Bytes(newPtr), a.Bytes(p))
	a.releaseBlock(block)

	return newPtr, nil
}

// Bytes returns the payload of the block at p. The slice's length and capacity are the block's
// usable size, which may exceed what was requested. It stays valid until the block is released
// or moved by Resize. Bytes(Nil) returns nil.
func (a *Allocator) Bytes(p Ptr) []byte {
	if p == Nil {
		return nil
	}

	size := a.hdr(refFromPtr(p)).size()
	end := int(p) + size
	return a.segment.Bytes()[p:end:end]
}

// UsableSize returns the payload size of the block at p
func (a *Allocator) UsableSize(p Ptr) int {
	if p == Nil {
		return 0
	}

	return a.hdr(refFromPtr(p)).size()
}

// IsEmpty returns true if the allocator has no blocks
func (a *Allocator) IsEmpty() bool {
	return a.base == noBlock
}

func (a *Allocator) checkChain() {
	if a.flags&CreateValidate != 0 {
		err := a.Validate()
		if err != nil {
			panic(err)
		}
		return
	}

	memutils.DebugValidate(a)
}
