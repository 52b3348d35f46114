package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/vkngwrapper/brkalloc/heap"
	"github.com/vkngwrapper/brkalloc/memutils"
	"github.com/vkngwrapper/brkalloc/metrics"
	"github.com/vkngwrapper/brkalloc/segment"
	"golang.org/x/exp/slog"
)

// heapOptions are the global flags shared by every demo
type heapOptions struct {
	segment  *string
	limit    *string
	logLevel *string
	noTrim   *bool
	validate *bool
	json     *bool
	metrics  *bool
}

func addHeapFlags(app *kingpin.Application) *heapOptions {
	return &heapOptions{
		segment:  app.Flag("segment", "Memory backing the heap.").Default("memory").Enum("memory", "mapped"),
		limit:    app.Flag("limit", "Largest break the segment allows, e.g. 64MiB.").Default("64MiB").String(),
		logLevel: app.Flag("log-level", "Allocator log level.").Default("warn").Enum("debug", "info", "warn", "error"),
		noTrim:   app.Flag("no-trim", "Never retract the break.").Bool(),
		validate: app.Flag("validate", "Validate the block chain after every heap call.").Bool(),
		json:     app.Flag("json", "Print the detailed heap map as json.").Bool(),
		metrics:  app.Flag("metrics", "Print the heap gauges exported to prometheus.").Bool(),
	}
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

type closer interface {
	Close() error
}

// demoHeap is an allocator plus the segment it grows
type demoHeap struct {
	*heap.Allocator

	segment segment.Segment
	opts    *heapOptions
}

func (o *heapOptions) newHeap() (*demoHeap, error) {
	limit, err := humanize.ParseBytes(*o.limit)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid --limit %q", *o.limit)
	}

	logger := slog.New(slog.HandlerOptions{Level: logLevels[*o.logLevel]}.NewTextHandler(os.Stderr))

	var seg segment.Segment
	switch *o.segment {
	case "mapped":
		seg, err = segment.NewMapped(int(limit))
		if err != nil {
			return nil, err
		}
	default:
		seg = segment.NewMemory(int(limit))
	}

	var flags heap.CreateFlags
	if *o.noTrim {
		flags |= heap.CreateNoTrim
	}
	if *o.validate {
		flags |= heap.CreateValidate
	}

	allocator, err := heap.New(logger, seg, heap.CreateOptions{Flags: flags})
	if err != nil {
		return nil, err
	}

	return &demoHeap{Allocator: allocator, segment: seg, opts: o}, nil
}

func (h *demoHeap) Close() error {
	if c, ok := h.segment.(closer); ok {
		return c.Close()
	}

	return nil
}

// report prints a summary of the heap and, if requested, its json map and prometheus gauges
func (h *demoHeap) report(w io.Writer, title string) error {
	var stats memutils.DetailedStatistics
	stats.Clear()
	h.AddDetailedStatistics(&stats)

	bold := color.New(color.Bold)
	bold.Fprintf(w, "Heap %s:\n", title)
	fmt.Fprintf(w,
		"\tbreak: %d, size: %v, blocks: %d, overhead: %v\n",
		h.segment.Break(),
		humanize.IBytes(uint64(stats.HeapBytes)),
		stats.BlockCount,
		humanize.IBytes(uint64(stats.OverheadBytes())),
	)
	fmt.Fprintf(w,
		"\tallocations: %d (%v), free ranges: %d (%v)\n",
		stats.AllocationCount,
		humanize.IBytes(uint64(stats.AllocationBytes)),
		stats.FreeRangeCount,
		humanize.IBytes(uint64(stats.FreeBytes())),
	)
	if stats.FreeRangeCount > 0 {
		fmt.Fprintf(w, "\tlargest free range: %v\n", humanize.IBytes(uint64(stats.FreeRangeSizeMax)))
	}

	if *h.opts.json {
		fmt.Fprintln(w, h.BuildStatsString())
	}

	if *h.opts.metrics {
		registry := prometheus.NewRegistry()
		registry.MustRegister(metrics.NewCollector("brkdemo", h.Allocator))

		families, err := registry.Gather()
		if err != nil {
			return errors.Wrap(err, "failed to gather heap metrics")
		}
		for _, family := range families {
			for _, metric := range family.GetMetric() {
				fmt.Fprintf(w, "\t%s %v\n", family.GetName(), metric.GetGauge().GetValue())
			}
		}
	}

	return nil
}
