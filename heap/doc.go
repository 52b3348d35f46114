// Package heap implements a first-fit heap allocator on top of a segment.Segment.
//
// The heap is a chain of blocks laid out back to back from the segment's break at the time
// the first block is created. Each block is a fixed header (payload size, free flag and the
// offsets of its neighbors) followed by its payload:
//
//	+--------+----------+--------+----------+--------+---------+
//	| header | payload  | header | payload  | header | payload | <- break
//	+--------+----------+--------+----------+--------+---------+
//
// Allocate walks the chain from the first block and takes the first free block that is large
// enough, splitting off the excess as a new free block when it is at least
// memutils.SplitThreshold bytes. If nothing fits, the break is moved forward and a new block
// is appended. Release marks a block free and merges it with free neighbors; a free block left
// at the end of the chain is handed back to the segment by moving the break back over it.
// Free blocks in the middle of the heap are kept for reuse.
//
// Payloads are addressed by Ptr, an offset from the segment base, and read or written
// through Bytes. All sizes and payload offsets are multiples of memutils.Alignment.
//
// Allocators perform no locking: see Allocator.
package heap
