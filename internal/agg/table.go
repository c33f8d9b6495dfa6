package agg

import "github.com/zeebo/xxh3"

// entry is one slot of a partition-local table. A slot is vacant while its
// Count is zero, so a zero-length key never aliases a vacant slot.
type entry struct {
	key   string
	stats Stats
}

// table is an open-addressing hash map from key bytes to Stats, private to
// one partition's scan. Linear probing over a power-of-two slot array keyed
// by xxh3; the key bytes are only copied into a string the first time a key
// is seen.
type table struct {
	entries []entry
	mask    uint64
	size    int
}

const initialTableCap = 1 << 10

func newTable() *table {
	return &table{
		entries: make([]entry, initialTableCap),
		mask:    initialTableCap - 1,
	}
}

func (t *table) observe(key []byte, v float64) {
	idx := xxh3.Hash(key) & t.mask
	for {
		e := &t.entries[idx]
		if e.stats.Count == 0 {
			e.key = string(key)
			e.stats.observe(v)
			t.size++
			if t.size > len(t.entries)*3/4 {
				t.grow()
			}
			return
		}
		if e.key == string(key) {
			e.stats.observe(v)
			return
		}
		idx = (idx + 1) & t.mask
	}
}

func (t *table) grow() {
	old := t.entries
	t.entries = make([]entry, 2*len(old))
	t.mask = uint64(len(t.entries) - 1)
	for _, e := range old {
		if e.stats.Count == 0 {
			continue
		}
		idx := xxh3.HashString(e.key) & t.mask
		for t.entries[idx].stats.Count != 0 {
			idx = (idx + 1) & t.mask
		}
		t.entries[idx] = e
	}
}
