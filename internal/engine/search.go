package engine

import "sort"

// memoKey identifies a DP state: the next candidate index to consider, the
// end_idx of the last chosen segment (-1 if none chosen yet), and the quota
// spent so far. Go structs of comparable fields are valid map keys natively,
// so no packing into a single integer is needed.
type memoKey struct {
	idx     int
	lastEnd int
	used    int
}

type memoResult struct {
	totalDays int
	used      int
	chosen    []Candidate
}

// searchState carries the inputs held constant across the recursion.
type searchState struct {
	candidates []Candidate
	quota      int
	spacing    int
	memo       map[memoKey]memoResult
}

// dpSearch picks a subset of (already pruned, start_idx-ascending)
// candidates with pairwise disjoint ranges, each at least spacing days
// after the previous one's end, whose total cto_used does not exceed
// quota, maximising summed total_days. Ties prefer the earlier-starting
// extension (the candidate list's natural ascending order), which a
// first-found-wins comparison in the recursion preserves deterministically.
func dpSearch(candidates []Candidate, quota, spacing int) memoResult {
	st := &searchState{
		candidates: candidates,
		quota:      quota,
		spacing:    spacing,
		memo:       make(map[memoKey]memoResult),
	}
	return st.solve(0, -1, 0)
}

func (st *searchState) solve(idx, lastEnd, used int) memoResult {
	key := memoKey{idx: idx, lastEnd: lastEnd, used: used}
	if cached, ok := st.memo[key]; ok {
		return cached
	}

	requiredStart := 0
	if lastEnd >= 0 {
		requiredStart = lastEnd + st.spacing
	}

	// Lower bound: first index at or after idx whose start_idx >= requiredStart.
	lo := sort.Search(len(st.candidates)-idx, func(i int) bool {
		return st.candidates[idx+i].StartIdx >= requiredStart
	}) + idx

	best := memoResult{totalDays: 0, used: 0, chosen: nil}

	for i := lo; i < len(st.candidates); i++ {
		c := st.candidates[i]
		if c.StartIdx < requiredStart {
			continue // defensive; should not happen given lo
		}
		if used+c.CTOUsed > st.quota {
			continue
		}

		sub := st.solve(i+1, c.EndIdx, used+c.CTOUsed)
		candidateTotal := c.TotalDays + sub.totalDays

		if candidateTotal > best.totalDays {
			chosen := make([]Candidate, 0, len(sub.chosen)+1)
			chosen = append(chosen, c)
			chosen = append(chosen, sub.chosen...)
			best = memoResult{
				totalDays: candidateTotal,
				used:      c.CTOUsed + sub.used,
				chosen:    chosen,
			}
		}
	}

	st.memo[key] = best
	return best
}
