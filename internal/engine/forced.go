package engine

import "time"

// applyForcedPasses runs C5 (forced extension) then C6 (forced filler) in a
// loop until either the quota is exhausted or a full C5+C6 pass made no
// progress, which bounds iteration at quota+1 rounds.
func applyForcedPasses(days []Day, breaks []Break, quota int) ([]Day, []Break, int) {
	remaining := quota
	for {
		before := remaining
		breaks, remaining = forceExtend(days, breaks, remaining)
		breaks, remaining = forceFill(days, breaks, remaining)
		if remaining == 0 || remaining == before {
			break
		}
	}
	return days, breaks, remaining
}

// forceExtend (C5) walks forward from each break's end_date one day at a
// time, converting the next day into CTO as long as it is not already in
// another break, is not fixed-off, and quota remains. It stops extending a
// given break the moment the next day is fixed-off, already in a break, or
// quota runs out.
func forceExtend(days []Day, breaks []Break, remaining int) ([]Break, int) {
	for bi := range breaks {
		next := dayIndexFor(days, breaks[bi].EndDate) + 1
		for remaining > 0 && next < len(days) && !days[next].InBreak && !days[next].IsFixedOff() {
			days[next].IsCTO = true
			days[next].InBreak = true

			breaks[bi].Days = append(breaks[bi].Days, days[next])
			breaks[bi].EndDate = days[next].Date
			breaks[bi].TotalDays++
			breaks[bi].CTODays++
			remaining--
			next++
		}
	}
	return breaks, remaining
}

// forceFill (C6) scans left-to-right for runs of days not yet in any break
// that contain at least one non-fixed-off day, and spends remaining quota
// converting those non-fixed-off days to CTO, skipping over any fixed-off
// days inside the run without advancing quota. The emitted break's Days
// list holds only the converted CTO days (fixed-off days swept over inside
// the run are not included, even though start_date/end_date may span them).
func forceFill(days []Day, breaks []Break, remaining int) ([]Break, int) {
	i := 0
	n := len(days)
	for i < n && remaining > 0 {
		if days[i].InBreak {
			i++
			continue
		}

		// Find the extent of this not-yet-in-break run.
		runEnd := i
		for runEnd+1 < n && !days[runEnd+1].InBreak {
			runEnd++
		}

		hasSpendable := false
		for k := i; k <= runEnd; k++ {
			if !days[k].IsFixedOff() {
				hasSpendable = true
				break
			}
		}
		if !hasSpendable {
			i = runEnd + 1
			continue
		}

		var fillDays []Day
		for k := i; k <= runEnd && remaining > 0; k++ {
			if days[k].IsFixedOff() {
				continue
			}
			days[k].IsCTO = true
			days[k].InBreak = true
			fillDays = append(fillDays, days[k])
			remaining--
		}

		if len(fillDays) > 0 {
			breaks = append(breaks, Break{
				StartDate: fillDays[0].Date,
				EndDate:   fillDays[len(fillDays)-1].Date,
				Days:      fillDays,
				TotalDays: len(fillDays),
				CTODays:   len(fillDays),
			})
		}

		i = runEnd + 1
	}
	return breaks, remaining
}

// dayIndexFor finds the index of the day matching date in days. Breaks are
// always built from this same days slice, so this always succeeds.
func dayIndexFor(days []Day, date time.Time) int {
	for i, d := range days {
		if sameDate(d.Date, date) {
			return i
		}
	}
	return -1
}
