package segment

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/brkalloc/memutils"
)

const (
	// DefaultMemoryLimit is the limit used by NewMemory when it is passed a limit of 0. It is equal to 64Mb.
	DefaultMemoryLimit int = 64 * 1024 * 1024
)

// MemorySegment is a Segment backed by a single Go byte slice sized to the segment limit. Memory
// between the break and the limit is never handed out, and bytes are cleared when the break
// retracts over them, so memory exposed by growth always reads as zero.
type MemorySegment struct {
	mem []byte
	brk int
}

var _ Segment = &MemorySegment{}

// NewMemory creates a MemorySegment whose break can grow up to limit bytes
func NewMemory(limit int) *MemorySegment {
	if limit <= 0 {
		limit = DefaultMemoryLimit
	}

	return &MemorySegment{
		mem: make([]byte, limit),
	}
}

// Limit returns the largest break this segment will accept
func (s *MemorySegment) Limit() int { return len(s.mem) }

func (s *MemorySegment) Break() int { return s.brk }

func (s *MemorySegment) Bytes() []byte {
	return s.mem[:s.brk:s.brk]
}

func (s *MemorySegment) Sbrk(delta int) (int, error) {
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

func (s *MemorySegment) Brk(offset int) error {
	if offset < 0 {
		return errors.Wrapf(memutils.ErrInvalidBreak, "break offset %d", offset)
	}
	if offset > len(s.mem) {
		return errors.Wrapf(memutils.ErrOutOfMemory, "break offset %d exceeds segment limit %d", offset, len(s.mem))
	}

	if offset < s.brk {
		clear(s.mem[offset:s.brk])
	}
	s.brk = offset

	return nil
}
