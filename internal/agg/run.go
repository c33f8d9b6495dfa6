// Package agg is the parallel scan-and-aggregate core: it partitions an
// immutable byte buffer of `key;value` lines into record-aligned ranges,
// scans the ranges concurrently into private per-partition tables, and
// merges those into one global per-key aggregate.
package agg

import (
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ErrEmptyInput is returned by Run when the buffer holds no bytes.
var ErrEmptyInput = errors.New("empty input buffer")

// Run aggregates the whole buffer: plan record-aligned partitions, scan
// each on its own goroutine, wait for all of them, then merge the partial
// tables into the global result. workers <= 0 selects the machine's CPU
// count. buf is shared read-only across the scan goroutines and is not
// retained after Run returns.
//
// Malformed records (no field delimiter) are skipped silently; the only
// surfaced failure is an empty buffer.
func Run(buf []byte, workers int) (map[string]Stats, error) {
	if len(buf) == 0 {
		return nil, ErrEmptyInput
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	spans := partitions(buf, workers)
	tables := make([]*table, len(spans))

	var g errgroup.Group
	for i, s := range spans {
		i, s := i, s
		g.Go(func() error {
			t := newTable()
			aggregateChunk(buf, s.start, s.end, t)
			tables[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return mergeTables(tables), nil
}
