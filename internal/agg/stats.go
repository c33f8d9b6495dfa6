package agg

// Stats is the running aggregate for one key.
type Stats struct {
	Min   float64
	Max   float64
	Total float64
	Count int64
}

// Mean returns Total/Count. Count must be positive; a key only exists in a
// result because at least one record was observed for it.
func (s Stats) Mean() float64 {
	return s.Total / float64(s.Count)
}

func (s *Stats) observe(v float64) {
	if s.Count == 0 {
		s.Min = v
		s.Max = v
	} else {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Total += v
	s.Count++
}

func (s *Stats) absorb(o Stats) {
	if o.Count == 0 {
		return
	}
	if s.Count == 0 {
		s.Min = o.Min
		s.Max = o.Max
	} else {
		if o.Min < s.Min {
			s.Min = o.Min
		}
		if o.Max > s.Max {
			s.Max = o.Max
		}
	}
	s.Total += o.Total
	s.Count += o.Count
}
