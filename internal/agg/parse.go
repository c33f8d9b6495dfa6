package agg

// parseValue converts the decimal bytes of a record's value field into a
// float64: optional leading '-', base-10 digits, at most one '.'. The input
// is trusted; bytes outside that shape yield an unspecified result. This is
// a deliberate trade of validation for speed on the hot path.
func parseValue(b []byte) float64 {
	i := 0
	neg := len(b) > 0 && b[0] == '-'
	if neg {
		i++
	}

	v := 0.0
	for ; i < len(b); i++ {
		if b[i] == '.' {
			i++
			break
		}
		v = v*10 + float64(b[i]-'0')
	}

	scale := 0.1
	for ; i < len(b); i++ {
		v += float64(b[i]-'0') * scale
		scale *= 0.1
	}

	if neg {
		return -v
	}
	return v
}
