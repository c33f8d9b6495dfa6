package agg

import "bytes"

const (
	fieldDelim = ';'
	lineTerm   = '\n'
)

// splitRecord separates one line into its key and value fields at the
// first delimiter. A line without a delimiter is malformed; the caller
// skips it without updating any aggregate.
func splitRecord(line []byte) (key, value []byte, ok bool) {
	idx := bytes.IndexByte(line, fieldDelim)
	if idx < 0 {
		return nil, nil, false
	}
	return line[:idx], line[idx+1:], true
}
