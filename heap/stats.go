package heap

import (
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/brkalloc/memutils"
)

func (a *Allocator) heapBytes() int {
	if a.base == noBlock {
		return 0
	}

	return a.segment.Break() - int(a.base)
}

// AddStatistics sums this heap's statistics into the statistics currently present in stats
func (a *Allocator) AddStatistics(stats *memutils.Statistics) {
	stats.HeapBytes += a.heapBytes()

	for block := a.base; block != noBlock; {
		h := a.hdr(block)
		stats.BlockCount++
		if !h.isFree() {
			stats.AllocationCount++
			stats.AllocationBytes += h.size()
		}

		block = h.next()
	}
}

// AddDetailedStatistics sums this heap's statistics, including the size distribution of
// allocations and free ranges, into the statistics currently present in stats
func (a *Allocator) AddDetailedStatistics(stats *memutils.DetailedStatistics) {
	stats.HeapBytes += a.heapBytes()

	for block := a.base; block != noBlock; {
		h := a.hdr(block)
		if h.isFree() {
			stats.AddFreeRange(h.size())
		} else {
			stats.AddAllocation(h.size())
		}

		block = h.next()
	}
}

// VisitAllBlocks calls handleBlock once for every block in address order, passing the
// block's payload pointer and size. Iteration stops at the first error, which is returned.
func (a *Allocator) VisitAllBlocks(handleBlock func(p Ptr, size int, free bool) error) error {
	for block := a.base; block != noBlock; {
		h := a.hdr(block)
		next := h.next()

		err := handleBlock(block.payload(), h.size(), h.isFree())
		if err != nil {
			return err
		}

		block = next
	}

	return nil
}

// PrintDetailedMap writes a json object describing the heap and every block in it
func (a *Allocator) PrintDetailedMap(writer *jwriter.Writer) {
	var stats memutils.DetailedStatistics
	stats.Clear()
	a.AddDetailedStatistics(&stats)

	obj := writer.Object()
	defer obj.End()

	obj.Name("Break").Int(a.segment.Break())
	obj.Name("TotalBytes").Int(stats.HeapBytes)
	obj.Name("UnusedBytes").Int(stats.FreeBytes())
	obj.Name("Allocations").Int(stats.AllocationCount)
	obj.Name("UnusedRanges").Int(stats.FreeRangeCount)

	blocks := obj.Name("Blocks").Array()
	defer blocks.End()

	_ = a.VisitAllBlocks(func(p Ptr, size int, free bool) error {
		blockObj := blocks.Object()
		defer blockObj.End()

		blockObj.Name("Offset").Int(int(p))
		blockObj.Name("Size").Int(size)
		blockObj.Name("Free").Bool(free)
		return nil
	})
}

// BuildStatsString returns the output of PrintDetailedMap as a string
func (a *Allocator) BuildStatsString() string {
	writer := jwriter.NewWriter()
	a.PrintDetailedMap(&writer)
	return string(writer.Bytes())
}
