package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDPSearch_RespectsQuota(t *testing.T) {
	candidates := []Candidate{
		{StartIdx: 0, EndIdx: 2, TotalDays: 3, CTOUsed: 3},
		{StartIdx: 10, EndIdx: 12, TotalDays: 3, CTOUsed: 3},
	}
	result := dpSearch(candidates, 3, 0)
	assert.LessOrEqual(t, result.used, 3)
	assert.Equal(t, 3, result.totalDays)
	require.Len(t, result.chosen, 1)
}

func TestDPSearch_EnforcesSpacing(t *testing.T) {
	candidates := []Candidate{
		{StartIdx: 0, EndIdx: 2, TotalDays: 3, CTOUsed: 1},
		{StartIdx: 4, EndIdx: 6, TotalDays: 3, CTOUsed: 1}, // within spacing of 10, must be rejected
		{StartIdx: 20, EndIdx: 22, TotalDays: 3, CTOUsed: 1},
	}
	result := dpSearch(candidates, 10, 10)
	starts := make([]int, 0, len(result.chosen))
	for _, c := range result.chosen {
		starts = append(starts, c.StartIdx)
	}
	assert.NotContains(t, starts, 4)
}

func TestDPSearch_MaximisesTotalDays(t *testing.T) {
	// Two disjoint, well-spaced candidates should both be picked over a
	// single overlapping alternative.
	candidates := []Candidate{
		{StartIdx: 0, EndIdx: 2, TotalDays: 3, CTOUsed: 1},
		{StartIdx: 0, EndIdx: 52, TotalDays: 53, CTOUsed: 3}, // costs more than the whole quota on its own
		{StartIdx: 50, EndIdx: 52, TotalDays: 3, CTOUsed: 1},
	}
	result := dpSearch(candidates, 2, 5)
	assert.Equal(t, 6, result.totalDays)
	assert.Len(t, result.chosen, 2)
}

func TestDPSearch_TieBreakPrefersEarlierStart(t *testing.T) {
	candidates := []Candidate{
		{StartIdx: 0, EndIdx: 2, TotalDays: 3, CTOUsed: 1},
		{StartIdx: 10, EndIdx: 12, TotalDays: 3, CTOUsed: 1},
	}
	result := dpSearch(candidates, 1, 20)
	require.Len(t, result.chosen, 1)
	assert.Equal(t, 0, result.chosen[0].StartIdx)
}

func TestDPSearch_EmptyCandidatesReturnsZero(t *testing.T) {
	result := dpSearch(nil, 10, 7)
	assert.Equal(t, 0, result.totalDays)
	assert.Equal(t, 0, result.used)
	assert.Empty(t, result.chosen)
}
