package schedule

import "math"

// DayTotals holds cross-medication dose counts for a single date.
type DayTotals struct {
	Total   int `json:"total"`
	Taken   int `json:"taken"`
	Missed  int `json:"missed"`
	Pending int `json:"pending"`
}

// SumDay totals dose statuses across all logs for one date. A log with no
// entry for the date contributes zero to every counter. Total always equals
// Taken + Missed + Pending.
func SumDay(logs []Log, date string) DayTotals {
	var totals DayTotals
	for _, log := range logs {
		for _, status := range log[date] {
			totals.Total++
			switch status {
			case StatusTaken:
				totals.Taken++
			case StatusMissed:
				totals.Missed++
			default:
				totals.Pending++
			}
		}
	}
	return totals
}

// CompletionRate returns the percentage of a medication's configured doses
// taken on the given date, rounded to the nearest integer. The denominator
// is the configured time list, not the size of that day's log entry. An
// empty time list yields 0 rather than a division error.
//
// The result is always in [0, 100]: log entries for times outside the
// configured list cannot push the rate past 100.
func CompletionRate(log Log, date string, times []string) int {
	if len(times) == 0 {
		return 0
	}
	taken := 0
	for _, status := range log[date] {
		if status == StatusTaken {
			taken++
		}
	}
	rate := int(math.Round(100 * float64(taken) / float64(len(times))))
	if rate > 100 {
		rate = 100
	}
	return rate
}
