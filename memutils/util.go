package memutils

import (
	"math"
	"math/bits"

	cerrors "github.com/cockroachdb/errors"
)

// CheckAligned returns an error wrapping AlignmentError if value is not a multiple of Alignment
func CheckAligned(value int, name string) error {
	if value%Alignment != 0 {
		return cerrors.Wrapf(AlignmentError, "%s is %d", name, value)
	}
	return nil
}

// AlignUp rounds value up to the next multiple of alignment, which must be a power of two
func AlignUp(value int, alignment uint) int {
	return (value + int(alignment) - 1) & int(^(alignment - 1))
}

// AlignDown rounds value down to the previous multiple of alignment, which must be a power of two
func AlignDown(value int, alignment uint) int {
	return value & int(^(alignment - 1))
}

// AlignSize rounds a requested payload size up to Alignment. Zero and negative sizes
// fail with ErrInvalidSize, as do sizes so large that rounding would overflow.
func AlignSize(size int) (int, error) {
	if size <= 0 {
		return 0, cerrors.Wrapf(ErrInvalidSize, "requested %d bytes", size)
	}
	if size > math.MaxInt-Alignment {
		return 0, cerrors.Wrapf(ErrSizeOverflow, "requested %d bytes", size)
	}

	return AlignUp(size, uint(Alignment)), nil
}

// CheckedMul multiplies count by elementSize, failing with ErrInvalidSize for negative
// operands and ErrSizeOverflow if the product does not fit in an int
func CheckedMul(count, elementSize int) (int, error) {
	if count < 0 || elementSize < 0 {
		return 0, cerrors.Wrapf(ErrInvalidSize, "%d elements of %d bytes", count, elementSize)
	}

	hi, lo := bits.Mul64(uint64(count), uint64(elementSize))
	if hi != 0 || lo > math.MaxInt {
		return 0, cerrors.Wrapf(ErrSizeOverflow, "%d elements of %d bytes", count, elementSize)
	}

	return int(lo), nil
}
