package indicator

// Troughs marks every index i whose value is the minimum of values[i-k..i+k].
// Only indices with a full window on both sides qualify. When several
// positions in a window share the minimum, the latest one is the trough.
func Troughs(values []float64, k int) []bool {
	return extrema(values, k, func(candidate, incoming float64) bool {
		return candidate >= incoming
	})
}

// Peaks marks every index i whose value is the maximum of values[i-k..i+k],
// with the same window and tie rules as Troughs.
func Peaks(values []float64, k int) []bool {
	return extrema(values, k, func(candidate, incoming float64) bool {
		return candidate <= incoming
	})
}

// extrema runs a sliding-window monotonic deque. dominated reports whether a
// queued value can never again be the window extreme once incoming arrives.
func extrema(values []float64, k int, dominated func(candidate, incoming float64) bool) []bool {
	marks := make([]bool, len(values))
	if k <= 0 {
		return marks
	}

	width := 2*k + 1
	deque := make([]int, 0, width)

	for j, v := range values {
		for len(deque) > 0 && dominated(values[deque[len(deque)-1]], v) {
			deque = deque[:len(deque)-1]
		}

		deque = append(deque, j)

		if deque[0] <= j-width {
			deque = deque[1:]
		}

		if j < width-1 {
			continue
		}

		center := j - k
		marks[center] = deque[0] == center
	}

	return marks
}
