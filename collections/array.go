package collections

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/brkalloc/heap"
)

// IntArray is a growable array of integers kept in a single heap block. It doubles its
// capacity when an insert finds it full and halves it when a removal leaves it less than a
// quarter used.
type IntArray struct {
	allocator Allocator
	data      heap.Ptr
	length    int
	capacity  int
}

// NewIntArray allocates a buffer for capacity integers
func NewIntArray(allocator Allocator, capacity int) (*IntArray, error) {
	if capacity <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "array capacity %d", capacity)
	}

	data, err := allocator.Allocate(capacity * intSize)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to allocate array of capacity %d", capacity)
	}

	return &IntArray{
		allocator: allocator,
		data:      data,
		capacity:  capacity,
	}, nil
}

func (a *IntArray) Len() int      { return a.length }
func (a *IntArray) Capacity() int { return a.capacity }

// SetCapacity resizes the buffer to hold capacity integers, truncating the array if it is
// longer than that. On failure the array is unchanged.
func (a *IntArray) SetCapacity(capacity int) error {
	if capacity <= 0 {
		return errors.Wrapf(ErrInvalidDimensions, "array capacity %d", capacity)
	}

	data, err := a.allocator.Resize(a.data, capacity*intSize)
	if err != nil {
		return errors.Wrapf(err, "failed to resize array to capacity %d", capacity)
	}

	a.data = data
	a.capacity = capacity
	if a.length > capacity {
		a.length = capacity
	}

	return nil
}

// Insert appends value, doubling the capacity first if the array is full
func (a *IntArray) Insert(value int32) error {
	if a.length >= a.capacity {
		err := a.SetCapacity(a.capacity * 2)
		if err != nil {
			return err
		}
	}

	writeInt(a.allocator.Bytes(a.data), a.length, value)
	a.length++

	return nil
}

// At returns the element at index
func (a *IntArray) At(index int) (int32, error) {
	if index < 0 || index >= a.length {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "index %d of %d", index, a.length)
	}

	return readInt(a.allocator.Bytes(a.data), index), nil
}

// Remove deletes the element at index, shifting later elements down. If that leaves the array
// less than a quarter full, the capacity is halved.
func (a *IntArray) Remove(index int) error {
	if index < 0 || index >= a.length {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d of %d", index, a.length)
	}

	b := a.allocator.Bytes(a.data)
	copy(b[index*intSize:a.length*intSize], b[(index+1)*intSize:a.length*intSize])
	a.length--

	if a.length > 0 && a.length < a.capacity/4 {
		return a.SetCapacity(max(a.capacity/2, 1))
	}

	return nil
}

// Values returns a copy of the elements
func (a *IntArray) Values() []int32 {
	values := make([]int32, a.length)
	if a.data == heap.Nil {
		return values
	}

	b := a.allocator.Bytes(a.data)
	for i := range values {
		values[i] = readInt(b, i)
	}

	return values
}

// Print writes the array as "[a, b, c]"
func (a *IntArray) Print(w io.Writer) error {
	values := a.Values()

	if _, err := fmt.Fprint(w, "["); err != nil {
		return err
	}
	for i, value := range values {
		if i > 0 {
			if _, err := fmt.Fprint(w, ", "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%d", value); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "]")
	return err
}

// Free releases the buffer. The array must not be used afterward.
func (a *IntArray) Free() {
	a.allocator.Release(a.data)
	a.data = heap.Nil
	a.length = 0
	a.capacity = 0
}
