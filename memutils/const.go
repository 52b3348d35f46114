package memutils

const (
	// Alignment is the granularity of every payload size and payload address handed out by the heap
	Alignment int = 4
	// HeaderSize is the number of bytes of block metadata that precede every payload
	HeaderSize int = 32
	// SplitThreshold is the smallest excess, in bytes, that is carved off an oversized block as a new
	// free block. It leaves room for the new header plus one aligned word of payload. Allocation,
	// shrinking resizes and in-place growing resizes all use this value.
	SplitThreshold int = HeaderSize + Alignment
)
