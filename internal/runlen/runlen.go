// Package runlen finds contiguous runs of samples satisfying a predicate.
// It is the shared open/close state machine behind sag, swell, and
// saturation event detection: a run opens on the first sample for which the
// predicate holds, stays open while it keeps holding, and closes on the
// first sample for which it fails (or at the end of the series).
package runlen

// Run is a contiguous index interval [Start, End], both inclusive.
type Run struct {
	Start int
	End   int
}

// Find scans indices 0..n-1 and returns all maximal runs for which pred
// holds. A run still open at index n-1 closes there.
func Find(n int, pred func(i int) bool) []Run {
	var (
		runs   []Run
		inside bool
		start  int
	)

	for i := 0; i < n; i++ {
		switch {
		case pred(i) && !inside:
			inside = true
			start = i
		case !pred(i) && inside:
			inside = false

			runs = append(runs, Run{Start: start, End: i - 1})
		}
	}

	if inside {
		runs = append(runs, Run{Start: start, End: n - 1})
	}

	return runs
}

// FindBelow returns all maximal runs where values[i] < threshold.
func FindBelow(values []float64, threshold float64) []Run {
	return Find(len(values), func(i int) bool { return values[i] < threshold })
}

// FindAbove returns all maximal runs where values[i] > threshold.
func FindAbove(values []float64, threshold float64) []Run {
	return Find(len(values), func(i int) bool { return values[i] > threshold })
}
