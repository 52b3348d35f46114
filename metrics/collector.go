// Package metrics exports heap statistics to prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/vkngwrapper/brkalloc/memutils"
)

// StatsSource is anything that can sum its detailed statistics into a memutils.DetailedStatistics,
// such as *heap.Allocator
type StatsSource interface {
	AddDetailedStatistics(stats *memutils.DetailedStatistics)
}

type heapCollector struct {
	source StatsSource

	heapBytes        *prometheus.Desc
	blocks           *prometheus.Desc
	allocations      *prometheus.Desc
	allocatedBytes   *prometheus.Desc
	freeRanges       *prometheus.Desc
	freeBytes        *prometheus.Desc
	largestFreeRange *prometheus.Desc
}

// NewCollector makes a collector that reads statistics from source on every scrape. The source
// is not safe for concurrent use, so callers must make sure scrapes do not race with heap calls.
func NewCollector(namespace string, source StatsSource) prometheus.Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "heap", name), help, nil, nil)
	}

	return &heapCollector{
		source:           source,
		heapBytes:        desc("bytes", "Bytes between the heap base and the program break, headers included."),
		blocks:           desc("blocks", "Number of blocks in the heap, free or in use."),
		allocations:      desc("allocations", "Number of blocks in use."),
		allocatedBytes:   desc("allocated_bytes", "Payload bytes held by blocks in use."),
		freeRanges:       desc("free_ranges", "Number of free blocks."),
		freeBytes:        desc("free_bytes", "Payload bytes held by free blocks."),
		largestFreeRange: desc("largest_free_range_bytes", "Payload size of the largest free block."),
	}
}

// Describe returns all descriptions of the collector.
func (c *heapCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.heapBytes
	ch <- c.blocks
	ch <- c.allocations
	ch <- c.allocatedBytes
	ch <- c.freeRanges
	ch <- c.freeBytes
	ch <- c.largestFreeRange
}

// Collect returns the current state of all metrics of the collector.
func (c *heapCollector) Collect(ch chan<- prometheus.Metric) {
	var stats memutils.DetailedStatistics
	stats.Clear()
	c.source.AddDetailedStatistics(&stats)

	gauge := func(desc *prometheus.Desc, value int) {
		ch <- prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, float64(value))
	}

	gauge(c.heapBytes, stats.HeapBytes)
	gauge(c.blocks, stats.BlockCount)
	gauge(c.allocations, stats.AllocationCount)
	gauge(c.allocatedBytes, stats.AllocationBytes)
	gauge(c.freeRanges, stats.FreeRangeCount)
	gauge(c.freeBytes, stats.FreeBytes())
	gauge(c.largestFreeRange, stats.FreeRangeSizeMax)
}
