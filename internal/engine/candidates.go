package engine

// windowsForStyle returns the (min,max) window list C2 must enumerate for a
// (already-normalised) style. Balanced unions all four named strategies.
func windowsForStyle(style Style) []window {
	if style == StyleBalanced {
		return balancedWindows
	}
	return styleWindows[style]
}

// generateCandidates enumerates every contiguous window of length
// L in [w.min, w.max] for every start index i such that i+L-1 is in range
// and the window's cto_used is > 0. For balanced, this is invoked once per
// window and the results concatenated (before pruning).
func generateCandidates(days []Day, style Style) []Candidate {
	var out []Candidate
	for _, w := range windowsForStyle(style) {
		out = append(out, generateForWindow(days, w.min, w.max)...)
	}
	return out
}

func generateForWindow(days []Day, minLen, maxLen int) []Candidate {
	var out []Candidate
	n := len(days)
	for length := minLen; length <= maxLen; length++ {
		for start := 0; start+length-1 < n; start++ {
			end := start + length - 1
			ctoUsed := 0
			for i := start; i <= end; i++ {
				if !days[i].IsFixedOff() {
					ctoUsed++
				}
			}
			if ctoUsed == 0 {
				continue
			}
			out = append(out, Candidate{
				StartIdx:   start,
				EndIdx:     end,
				TotalDays:  length,
				CTOUsed:    ctoUsed,
				Efficiency: float64(length) / float64(ctoUsed),
			})
		}
	}
	return out
}
