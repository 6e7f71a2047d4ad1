package engine

import (
	"sort"
	"time"
)

// Optimize runs the full C1→C7 pipeline for one target year and returns the
// annotated day sequence, the chosen breaks, and rolled-up stats. It is a
// pure, synchronous function: no I/O, no concurrency, no state retained
// across calls.
func Optimize(params OptimizeParams) OptimizeResult {
	style := normalizeStyle(params.Strategy)
	quota := params.NumberOfDays
	if quota < 0 {
		quota = 0
	}

	year := params.Year
	today := params.Today
	if today.IsZero() {
		today = time.Now()
	}
	if year == 0 {
		year = today.Year()
	}

	// C1
	days := buildCalendar(year, params.Holidays, params.CompanyDaysOff, today)

	// C2
	candidates := generateCandidates(days, style)

	// C3
	pruned := pruneCandidates(candidates, quota)

	// C4
	spacing := styleSpacing[style]
	searchResult := dpSearch(pruned, quota, spacing)

	breaks := markChosenSegments(days, searchResult.chosen)
	spent := searchResult.used

	// C5 + C6
	days, breaks, _ = applyForcedPasses(days, breaks, quota-spent)

	// C7
	breaks, stats := assemble(breaks)

	return OptimizeResult{
		Days:   days,
		Breaks: breaks,
		Stats:  stats,
	}
}

// markChosenSegments converts C4's chosen candidates into Break records,
// setting in_break on every day inside each segment and is_cto on its
// non-fixed-off days. Only TotalDays is filled in here; the per-category
// counts are left to countBreak in assemble.
func markChosenSegments(days []Day, chosen []Candidate) []Break {
	breaks := make([]Break, 0, len(chosen))
	for _, c := range chosen {
		b := Break{
			StartDate: days[c.StartIdx].Date,
			EndDate:   days[c.EndIdx].Date,
		}
		for i := c.StartIdx; i <= c.EndIdx; i++ {
			if !days[i].IsFixedOff() {
				days[i].IsCTO = true
			}
			days[i].InBreak = true
			b.Days = append(b.Days, days[i])
		}
		b.TotalDays = len(b.Days)
		breaks = append(breaks, b)
	}
	return breaks
}

// assemble (C7) sorts breaks by start date, computes per-break category
// counts from each break's Days, and rolls per-break counters up into
// Stats.
func assemble(breaks []Break) ([]Break, Stats) {
	for bi := range breaks {
		breaks[bi] = countBreak(breaks[bi])
	}

	sort.Slice(breaks, func(i, j int) bool {
		return breaks[i].StartDate.Before(breaks[j].StartDate)
	})

	var stats Stats
	for _, b := range breaks {
		stats.TotalCTODays += b.CTODays
		stats.TotalPublicHolidays += b.PublicHolidays
		stats.TotalWeekends += b.Weekends
		stats.TotalCompanyDaysOff += b.CompanyDaysOff
		stats.TotalDaysOff += b.TotalDays
	}
	// Known quirk (see DESIGN.md): this duplicates TotalCTODays by design,
	// kept bug-compatible with the source.
	stats.TotalExtendedWeekends = stats.TotalCTODays

	return breaks, stats
}

// countBreak fills in a break's per-category counts from its Days list.
// Counts are computed from the day flags rather than trusted from the
// caller, since chosen-segment breaks arrive with no category counts and
// forced-extension/filler breaks only tally TotalDays and CTODays as they
// grow. Each day lands in exactly one
// bucket — weekend takes priority over holiday, then company-off, then cto —
// so total_days stays equal to the sum of the four counters even when a
// holiday or company day off falls on a weekend.
func countBreak(b Break) Break {
	var cto, holiday, weekend, company int
	for _, d := range b.Days {
		if d.IsWeekend {
			weekend++
		} else if d.IsPublicHoliday {
			holiday++
		} else if d.IsCompanyOff {
			company++
		} else if d.IsCTO {
			cto++
		}
	}
	b.CTODays = cto
	b.PublicHolidays = holiday
	b.Weekends = weekend
	b.CompanyDaysOff = company
	b.TotalDays = len(b.Days)
	return b
}
