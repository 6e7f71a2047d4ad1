package engine

import "time"

// buildCalendar materialises the planning horizon as an ordered Day array
// covering [start, Dec 31 of year] inclusive. start is today when year
// equals today's year, otherwise Jan 1 of year.
//
// Flag resolution is first-match-wins linear scans over holidays and
// companyOff, mirroring the teacher's holidays.IsHoliday lookup.
func buildCalendar(year int, holidays []Holiday, companyOff []CompanyOffRule, today time.Time) []Day {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	if year == today.Year() {
		start = truncateToDate(today)
	}
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	var days []Day
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		day := Day{
			Date:      d,
			IsWeekend: isWeekend(d),
		}

		if name, ok := lookupHoliday(holidays, d); ok {
			day.IsPublicHoliday = true
			day.HolidayName = name
		}

		if name, ok := lookupCompanyOff(companyOff, d); ok {
			day.IsCompanyOff = true
			day.CompanyName = name
		}

		days = append(days, day)
	}
	return days
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func isWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func lookupHoliday(holidays []Holiday, d time.Time) (string, bool) {
	for _, h := range holidays {
		if sameDate(h.Date, d) {
			return h.Name, true
		}
	}
	return "", false
}

func lookupCompanyOff(rules []CompanyOffRule, d time.Time) (string, bool) {
	for _, r := range rules {
		if r.matches(d) {
			return r.Name, true
		}
	}
	return "", false
}
