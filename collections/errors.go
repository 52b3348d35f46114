package collections

import "github.com/pkg/errors"

var (
	// ErrKeyNotFound is returned from IntList.Delete when no node holds the key
	ErrKeyNotFound error = errors.New("key not found")
	// ErrIndexOutOfRange is returned when an IntArray index is negative or past the last element
	ErrIndexOutOfRange error = errors.New("index out of range")
	// ErrInvalidDimensions is returned when a collection is created with a non-positive size
	ErrInvalidDimensions error = errors.New("invalid collection dimensions")
)
