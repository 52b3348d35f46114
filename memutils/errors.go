package memutils

import "github.com/pkg/errors"

var (
	// ErrOutOfMemory is returned when the heap segment cannot be grown to satisfy a request
	ErrOutOfMemory error = errors.New("out of memory")
	// ErrInvalidSize is returned when a requested size is zero or negative after alignment
	ErrInvalidSize error = errors.New("invalid allocation size")
	// ErrSizeOverflow is returned when the byte count of a zero-filled allocation does not fit in an int
	ErrSizeOverflow error = errors.New("allocation size overflows")
	// ErrInvalidBreak is returned when a segment is asked to move its break below its base
	ErrInvalidBreak error = errors.New("invalid program break")
	// ErrBreakMoved is returned when the segment break is no longer at the end of the heap because
	// something other than the heap moved it
	ErrBreakMoved error = errors.New("segment break moved outside the heap")
	// AlignmentError is the error returned from CheckAligned if a value is not a multiple of Alignment
	AlignmentError error = errors.New("value must be a multiple of the heap alignment")
)
