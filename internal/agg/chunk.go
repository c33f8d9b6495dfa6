package agg

import "bytes"

// aggregateChunk scans buf[start:end] record by record and folds every
// well-formed record into t. It never reads at or past end; the final
// partition of a file may end without a line terminator, in which case the
// trailing bytes form the last record. An empty range is a no-op.
func aggregateChunk(buf []byte, start, end int, t *table) {
	i := start
	for i < end {
		var line []byte
		if j := bytes.IndexByte(buf[i:end], lineTerm); j >= 0 {
			line = buf[i : i+j]
			i += j + 1
		} else {
			line = buf[i:end]
			i = end
		}

		key, value, ok := splitRecord(line)
		if !ok {
			continue
		}
		t.observe(key, parseValue(value))
	}
}
