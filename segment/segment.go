// Package segment provides the program break that the heap allocator grows and shrinks.
//
// A Segment is a linear range of memory starting at offset 0 with a movable break. Memory
// in [0, Break()) is addressable; moving the break forward makes more memory available and
// moving it back hands memory back. The backing memory never moves, so offsets into the
// segment and slices returned from Bytes stay valid for as long as the break covers them.
//
// Segments are not safe for concurrent use.
package segment

//go:generate mockgen -destination mocks/segment.go -package mock_segment github.com/vkngwrapper/brkalloc/segment Segment

// Segment is a heap segment with a movable program break
type Segment interface {
	// Break returns the current break as an offset from the segment base
	Break() int
	// Sbrk moves the break by delta bytes and returns the previous break. On failure the
	// break is left where it was.
	Sbrk(delta int) (int, error)
	// Brk sets the break to offset. On failure the break is left where it was.
	Brk(offset int) error
	// Bytes returns the memory between the segment base and the current break
	Bytes() []byte
}
