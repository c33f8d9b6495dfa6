package agg

// mergeTables folds the per-partition tables into one global mapping,
// visiting tables in partition order. Count and Total sum; Min and Max take
// the extremes. The fold is commutative and associative, so any traversal
// order yields the same result.
func mergeTables(tables []*table) map[string]Stats {
	global := make(map[string]Stats)
	for _, t := range tables {
		for i := range t.entries {
			e := &t.entries[i]
			if e.stats.Count == 0 {
				continue
			}
			g := global[e.key]
			g.absorb(e.stats)
			global[e.key] = g
		}
	}
	return global
}
