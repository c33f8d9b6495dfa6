// Package report renders the merged per-key aggregates as delimited text.
package report

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/example/keystats/internal/agg"
)

// Header is the column header line, matching the report columns.
const Header = "Location;Count;Average;Min;Max"

// Options controls the rendering of a report.
type Options struct {
	// SortKeys emits lines in ascending key order instead of map
	// iteration order.
	SortKeys bool
	// Header prepends the column header line.
	Header bool
}

// Write renders one `key;count;average;min;max` line per key.
func Write(w io.Writer, result map[string]agg.Stats, opts Options) error {
	bw := bufio.NewWriter(w)
	if opts.Header {
		fmt.Fprintln(bw, Header)
	}
	if opts.SortKeys {
		keys := make([]string, 0, len(result))
		for k := range result {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			writeLine(bw, k, result[k])
		}
	} else {
		for k, s := range result {
			writeLine(bw, k, s)
		}
	}
	return bw.Flush()
}

func writeLine(w io.Writer, key string, s agg.Stats) {
	fmt.Fprintf(w, "%s;%d;%s;%s;%s\n", key, s.Count, num(s.Mean()), num(s.Min), num(s.Max))
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
