package agg

import "bytes"

// A span is one partition: a half-open byte range [start, end) into the
// shared buffer.
type span struct {
	start int
	end   int
}

// partitions divides buf into n contiguous ranges of roughly len(buf)/n
// bytes. Every boundary except the final one is moved forward to just past
// the next line terminator, so no record straddles two spans. On tiny
// inputs snapping can swallow whole ranges; the resulting empty spans are
// legal and scan as no-ops. The spans always cover buf exactly once.
func partitions(buf []byte, n int) []span {
	if len(buf) == 0 {
		return nil
	}
	if n < 1 {
		n = 1
	}
	if n > len(buf) {
		n = len(buf)
	}

	chunk := len(buf) / n
	spans := make([]span, 0, n)
	start := 0
	for i := 1; i < n; i++ {
		cut := i * chunk
		if cut < start {
			cut = start
		}
		if j := bytes.IndexByte(buf[cut:], lineTerm); j >= 0 {
			cut += j + 1
		} else {
			cut = len(buf)
		}
		spans = append(spans, span{start, cut})
		start = cut
	}
	return append(spans, span{start, len(buf)})
}
