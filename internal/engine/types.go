// Package engine implements the CTO-day planning optimiser: calendar
// construction, candidate enumeration, dominance pruning, a memoised DP
// search over non-overlapping segments, and the forced-extension/forced-
// filler passes that make sure the whole quota gets spent.
package engine

import "time"

// Style is a CTO-day planning strategy. It controls the candidate window
// sizes C2 enumerates and the spacing C4 enforces between chosen breaks.
type Style string

const (
	StyleBalanced          Style = "balanced"
	StyleLongWeekends      Style = "longWeekends"
	StyleMiniBreaks        Style = "miniBreaks"
	StyleWeekLongBreaks    Style = "weekLongBreaks"
	StyleExtendedVacations Style = "extendedVacations"
)

// window is an inclusive [min, max] break-length range a style searches.
type window struct {
	min, max int
}

// styleWindows maps a style to the window(s) C2 enumerates for it. Balanced
// is the union of the other four.
var styleWindows = map[Style][]window{
	StyleLongWeekends:      {{3, 4}},
	StyleMiniBreaks:        {{5, 6}},
	StyleWeekLongBreaks:    {{7, 9}},
	StyleExtendedVacations: {{10, 15}},
}

var balancedWindows = []window{{3, 4}, {5, 6}, {7, 9}, {10, 15}}

// styleSpacing is the minimum number of days C4 must leave between the end
// of one chosen segment and the start of the next, per style.
var styleSpacing = map[Style]int{
	StyleLongWeekends:      7,
	StyleMiniBreaks:        14,
	StyleWeekLongBreaks:    21,
	StyleExtendedVacations: 30,
	StyleBalanced:          21,
}

// normalizeStyle treats any unrecognised strategy as balanced (§7).
func normalizeStyle(s Style) Style {
	if s == StyleBalanced {
		return StyleBalanced
	}
	if _, ok := styleWindows[s]; ok {
		return s
	}
	return StyleBalanced
}

// Day is one position in the planning horizon.
type Day struct {
	Date            time.Time
	IsWeekend       bool
	IsPublicHoliday bool
	HolidayName     string
	IsCompanyOff    bool
	CompanyName     string
	IsCTO           bool
	InBreak         bool
}

// DateString renders Date in YYYY-MM-DD form.
func (d Day) DateString() string {
	return d.Date.Format("2006-01-02")
}

// IsFixedOff reports whether the day is already non-working for a reason
// other than spent CTO quota.
func (d Day) IsFixedOff() bool {
	return d.IsWeekend || d.IsPublicHoliday || d.IsCompanyOff
}

// Holiday is a single public holiday input.
type Holiday struct {
	Date time.Time
	Name string
}

// CompanyOffRule is a company-provided day off. It is a tagged variant: when
// IsRecurring is false, Date/Name describe a single day; when true, Weekday/
// StartDate/EndDate/Name describe every occurrence of that weekday in the
// closed interval [StartDate, EndDate].
type CompanyOffRule struct {
	IsRecurring bool

	// Single-date shape.
	Date time.Time
	Name string

	// Recurring shape.
	Weekday   time.Weekday
	StartDate time.Time
	EndDate   time.Time
}

// matches reports whether the rule applies to date d.
func (r CompanyOffRule) matches(d time.Time) bool {
	if r.IsRecurring {
		if r.StartDate.After(r.EndDate) {
			return false
		}
		return !d.Before(r.StartDate) && !d.After(r.EndDate) && d.Weekday() == r.Weekday
	}
	return sameDate(r.Date, d)
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Candidate is a contiguous window proposed to the DP search.
type Candidate struct {
	StartIdx   int
	EndIdx     int
	TotalDays  int
	CTOUsed    int
	Efficiency float64
}

// Break is a realised contiguous run of off-days in the final plan.
type Break struct {
	StartDate      time.Time
	EndDate        time.Time
	Days           []Day
	TotalDays      int
	CTODays        int
	PublicHolidays int
	Weekends       int
	CompanyDaysOff int
}

// Stats are totals rolled up from the Break list.
type Stats struct {
	TotalCTODays           int
	TotalPublicHolidays    int
	TotalWeekends          int
	TotalCompanyDaysOff    int
	TotalDaysOff           int
	TotalExtendedWeekends  int // kept bug-compatible: duplicates TotalCTODays, see DESIGN.md
}

// OptimizeParams are the inputs to Optimize.
type OptimizeParams struct {
	NumberOfDays   int
	Strategy       Style
	Year           int // zero means "current year"
	Holidays       []Holiday
	CompanyDaysOff []CompanyOffRule
	Today          time.Time // injection point for "current year" truncation; zero means time.Now()
}

// OptimizeResult is what Optimize returns.
type OptimizeResult struct {
	Days   []Day
	Breaks []Break
	Stats  Stats
}
