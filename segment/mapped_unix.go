//go:build linux || darwin || freebsd

package segment

import (
	"math"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/brkalloc/memutils"
	"golang.org/x/sys/unix"
)

// MappedSegment is a Segment backed by an anonymous private memory mapping. The whole
// reservation is mapped inaccessible up front; pages are made readable and writable as the
// break grows over them and are handed back to the operating system as it retracts.
type MappedSegment struct {
	mem       []byte
	brk       int
	committed int
	pageSize  int
}

var _ Segment = &MappedSegment{}

// mprotect is swapped out in tests
var mprotect = unix.Mprotect

// NewMapped reserves reserve bytes of address space, rounded up to the page size
func NewMapped(reserve int) (*MappedSegment, error) {
	pageSize := os.Getpagesize()
	if reserve <= 0 {
		reserve = DefaultMemoryLimit
	}
	if reserve > math.MaxInt-pageSize {
		return nil, errors.Wrapf(memutils.ErrOutOfMemory, "cannot reserve %d bytes", reserve)
	}
	reserve = memutils.AlignUp(reserve, uint(pageSize))

	mem, err := unix.Mmap(-1, 0, reserve, unix.PROT_NONE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to reserve %d bytes for heap segment", reserve)
	}

	return &MappedSegment{
		mem:      mem,
		pageSize: pageSize,
	}, nil
}

// Limit returns the largest break this segment will accept
func (s *MappedSegment) Limit() int { return len(s.mem) }

// Committed returns the number of bytes currently backed by accessible pages
func (s *MappedSegment) Committed() int { return s.committed }

func (s *MappedSegment) Break() int { return s.brk }

func (s *MappedSegment) Bytes() []byte {
	return s.mem[:s.brk:s.brk]
}

func (s *MappedSegment) Sbrk(delta int) (int, error) {
	prev := s.brk
	if delta > 0 && delta > math.MaxInt-prev {
		return prev, errors.Wrapf(memutils.ErrOutOfMemory, "cannot grow break at %d by %d bytes", prev, delta)
	}

	err := s.Brk(prev + delta)
	if err != nil {
		return prev, err
	}

	return prev, nil
}

// Brk moves the break to offset, committing or releasing whole pages. Pages above a retracted
// break are returned to the operating system and made inaccessible; if only the second step
// fails the retraction still succeeds and the pages stay committed until a later retraction.
func (s *MappedSegment) Brk(offset int) error {
	if s.mem == nil {
		return errors.New("heap segment has been closed")
	}
	if offset < 0 {
		return errors.Wrapf(memutils.ErrInvalidBreak, "break offset %d", offset)
	}
	if offset > len(s.mem) {
		return errors.Wrapf(memutils.ErrOutOfMemory, "break offset %d exceeds segment reservation %d", offset, len(s.mem))
	}

	committed := memutils.AlignUp(offset, uint(s.pageSize))

	if committed > s.committed {
		err := mprotect(s.mem[s.committed:committed], unix.PROT_READ|unix.PROT_WRITE)
		if err != nil {
			return errors.Wrapf(errors.Mark(err, memutils.ErrOutOfMemory), "failed to commit heap pages up to %d", committed)
		}
	} else if committed < s.committed {
		// Once MADV_DONTNEED succeeds the pages read as zero, so the retraction has happened. If
		// they cannot be made inaccessible afterward they stay committed and writable.
		released := s.mem[committed:s.committed]
		err := unix.Madvise(released, unix.MADV_DONTNEED)
		if err != nil {
			return errors.Wrapf(err, "failed to release %d bytes to the operating system", len(released))
		}

		err = mprotect(released, unix.PROT_NONE)
		if err != nil {
			committed = s.committed
		}
	}

	// The tail of the last committed page stays mapped, so clear it by hand
	if offset < s.brk {
		clear(s.mem[offset:min(s.brk, committed)])
	}

	s.committed = committed
	s.brk = offset

	return nil
}

// Close unmaps the whole reservation. Any slice previously returned from Bytes must not be used afterward.
func (s *MappedSegment) Close() error {
	if s.mem == nil {
		return nil
	}

	err := unix.Munmap(s.mem)
	if err != nil {
		return errors.Wrap(err, "failed to unmap heap segment")
	}

	s.mem = nil
	s.brk = 0
	s.committed = 0
	return nil
}
