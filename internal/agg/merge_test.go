package agg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableOf(obs map[string][]float64) *table {
	t := newTable()
	for key, values := range obs {
		for _, v := range values {
			t.observe([]byte(key), v)
		}
	}
	return t
}

func TestMergeTables(t *testing.T) {
	a := tableOf(map[string][]float64{
		"A": {10, 20},
		"B": {-5},
	})
	b := tableOf(map[string][]float64{
		"A": {-1},
		"C": {3.5},
	})

	global := mergeTables([]*table{a, b})
	require.Len(t, global, 3)

	assert.Equal(t, int64(3), global["A"].Count)
	assert.InDelta(t, 29, global["A"].Total, 1e-9)
	assert.Equal(t, -1.0, global["A"].Min)
	assert.Equal(t, 20.0, global["A"].Max)

	assert.Equal(t, Stats{Min: -5, Max: -5, Total: -5, Count: 1}, global["B"])
	assert.Equal(t, Stats{Min: 3.5, Max: 3.5, Total: 3.5, Count: 1}, global["C"])
}

func TestMergeOrderInvariant(t *testing.T) {
	build := func() []*table {
		return []*table{
			tableOf(map[string][]float64{"A": {1, 2}, "B": {-3}}),
			tableOf(map[string][]float64{"A": {5}, "C": {0.5}}),
			tableOf(map[string][]float64{"B": {9, -9}}),
			newTable(), // empty partial is a no-op
		}
	}

	forward := mergeTables(build())

	tables := build()
	for i, j := 0, len(tables)-1; i < j; i, j = i+1, j-1 {
		tables[i], tables[j] = tables[j], tables[i]
	}
	reversed := mergeTables(tables)

	require.Equal(t, len(forward), len(reversed))
	for key, want := range forward {
		got, ok := reversed[key]
		require.True(t, ok)
		assert.Equal(t, want.Count, got.Count, key)
		assert.Equal(t, want.Min, got.Min, key)
		assert.Equal(t, want.Max, got.Max, key)
		assert.InDelta(t, want.Total, got.Total, 1e-9, key)
	}
}

func TestMergeConservesCounts(t *testing.T) {
	tables := []*table{
		tableOf(map[string][]float64{"A": {1, 2, 3}, "B": {4}}),
		tableOf(map[string][]float64{"A": {5}, "B": {6, 7}}),
	}

	partial := make(map[string]int64)
	for _, tbl := range tables {
		for i := range tbl.entries {
			e := &tbl.entries[i]
			if e.stats.Count != 0 {
				partial[e.key] += e.stats.Count
			}
		}
	}

	global := mergeTables(tables)
	require.Equal(t, len(partial), len(global))
	for key, want := range partial {
		assert.Equal(t, want, global[key].Count, key)
	}
}
