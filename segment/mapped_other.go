//go:build !(linux || darwin || freebsd)

package segment

import "github.com/cockroachdb/errors"

// MappedSegment is unavailable on this platform; NewMapped always fails
type MappedSegment struct {
	MemorySegment
}

// NewMapped returns ErrMappingUnsupported on this platform
func NewMapped(reserve int) (*MappedSegment, error) {
	return nil, errors.WithStack(ErrMappingUnsupported)
}

func (s *MappedSegment) Committed() int { return 0 }

func (s *MappedSegment) Close() error { return nil }
