package engine

import "sort"

// pruneCandidates drops anything costing more than the available quota,
// then removes weakly-dominated candidates within each start_idx group, and
// returns the survivors sorted by start_idx ascending.
//
// B weakly dominates A (same start_idx) when B ends at least as late, costs
// no more quota, and spans at least as many days. Candidates that weakly
// dominate each other are both kept: the scan only drops A when it finds a
// *distinct* B that dominates it, never the reverse in the same pass.
func pruneCandidates(candidates []Candidate, quota int) []Candidate {
	affordable := candidates[:0:0]
	for _, c := range candidates {
		if c.CTOUsed <= quota {
			affordable = append(affordable, c)
		}
	}

	groups := make(map[int][]Candidate)
	var starts []int
	for _, c := range affordable {
		if _, ok := groups[c.StartIdx]; !ok {
			starts = append(starts, c.StartIdx)
		}
		groups[c.StartIdx] = append(groups[c.StartIdx], c)
	}

	var survivors []Candidate
	for _, start := range starts {
		group := groups[start]
		for i, a := range group {
			dominated := false
			for j, b := range group {
				if i == j {
					continue
				}
				if b.EndIdx >= a.EndIdx && b.CTOUsed <= a.CTOUsed && b.TotalDays >= a.TotalDays && !equalCandidate(a, b) {
					dominated = true
					break
				}
			}
			if !dominated {
				survivors = append(survivors, a)
			}
		}
	}

	sort.SliceStable(survivors, func(i, j int) bool {
		return survivors[i].StartIdx < survivors[j].StartIdx
	})

	return survivors
}

// equalCandidate reports whether a and b describe the same window, used to
// avoid a candidate "dominating" a byte-identical duplicate of itself and
// dropping both.
func equalCandidate(a, b Candidate) bool {
	return a.StartIdx == b.StartIdx && a.EndIdx == b.EndIdx && a.CTOUsed == b.CTOUsed && a.TotalDays == b.TotalDays
}
