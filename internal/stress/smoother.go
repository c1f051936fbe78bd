package stress

// SmoothStressClusters breaks up runs of three or more consecutive
// stressed syllables in a whole-line stress sequence. For the first
// three-element window of a run, the middle position is demoted to 0 only
// if it carries primary stress (secondary stress is left untouched); the
// scan then advances past the whole window. A single pass with
// non-overlapping windows can leave adjacent new clusters unresolved;
// that is an accepted limitation of the heuristic, and the behavior is
// frozen for output compatibility.
func SmoothStressClusters(sequence []int) []int {
	smoothed := make([]int, len(sequence))
	copy(smoothed, sequence)

	i := 0
	for i < len(smoothed)-2 {
		if smoothed[i] > 0 && smoothed[i+1] > 0 && smoothed[i+2] > 0 {
			if smoothed[i+1] == 1 {
				smoothed[i+1] = 0
			}
			i += 3
		} else {
			i++
		}
	}

	return smoothed
}
