package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildCalendar_FullYearFromJanuary(t *testing.T) {
	days := buildCalendar(2025, nil, nil, date(2024, time.March, 1))

	require.Len(t, days, 365)
	assert.Equal(t, "2025-01-01", days[0].DateString())
	assert.Equal(t, "2025-12-31", days[len(days)-1].DateString())
}

func TestBuildCalendar_CurrentYearTruncatesToToday(t *testing.T) {
	today := date(2025, time.June, 15)
	days := buildCalendar(2025, nil, nil, today)

	assert.Equal(t, "2025-06-15", days[0].DateString())
	assert.Equal(t, "2025-12-31", days[len(days)-1].DateString())
}

func TestBuildCalendar_WeekendFlag(t *testing.T) {
	days := buildCalendar(2025, nil, nil, date(2024, time.January, 1))
	for _, d := range days {
		wd := d.Date.Weekday()
		expected := wd == time.Saturday || wd == time.Sunday
		assert.Equal(t, expected, d.IsWeekend, d.DateString())
	}
}

func TestBuildCalendar_HolidayFirstMatchWins(t *testing.T) {
	holidays := []Holiday{
		{Date: date(2025, time.July, 4), Name: "First"},
		{Date: date(2025, time.July, 4), Name: "Second"},
	}
	days := buildCalendar(2025, holidays, nil, date(2024, time.January, 1))

	d := findDay(t, days, "2025-07-04")
	assert.True(t, d.IsPublicHoliday)
	assert.Equal(t, "First", d.HolidayName)
}

func TestBuildCalendar_RecurringCompanyOff(t *testing.T) {
	rules := []CompanyOffRule{
		{
			IsRecurring: true,
			Weekday:     time.Friday,
			StartDate:   date(2025, time.January, 1),
			EndDate:     date(2025, time.March, 31),
			Name:        "Summer Fridays",
		},
	}
	days := buildCalendar(2025, nil, rules, date(2024, time.January, 1))

	for _, d := range days {
		inRange := !d.Date.Before(date(2025, time.January, 1)) && !d.Date.After(date(2025, time.March, 31))
		expected := inRange && d.Date.Weekday() == time.Friday
		assert.Equal(t, expected, d.IsCompanyOff, d.DateString())
	}
}

func TestBuildCalendar_InvertedRecurringRangeMatchesNothing(t *testing.T) {
	rules := []CompanyOffRule{
		{
			IsRecurring: true,
			Weekday:     time.Friday,
			StartDate:   date(2025, time.March, 31),
			EndDate:     date(2025, time.January, 1),
			Name:        "Broken",
		},
	}
	days := buildCalendar(2025, nil, rules, date(2024, time.January, 1))

	for _, d := range days {
		assert.False(t, d.IsCompanyOff, d.DateString())
	}
}

func findDay(t *testing.T, days []Day, dateString string) Day {
	t.Helper()
	for _, d := range days {
		if d.DateString() == dateString {
			return d
		}
	}
	t.Fatalf("date %s not found in calendar", dateString)
	return Day{}
}
