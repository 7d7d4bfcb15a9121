package schedule

import "time"

// DateLayout is the calendar-date format used throughout the log structure.
const DateLayout = "2006-01-02"

// TimeLayout is the 24-hour clock format used for dose times.
const TimeLayout = "15:04"

// Frequency represents the recurrence cadence of a medication schedule.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// Valid reports whether f is one of the known cadences.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// ExpandDates returns every dose date between startDate and endDate
// inclusive, stepping by the given frequency. An unrecognized frequency
// steps daily. An end date before the start date, or a date that does not
// parse, yields an empty result rather than an error.
//
// Monthly stepping uses time.Time.AddDate, so month increments roll over
// year boundaries and normalize short months (Jan 31 + 1 month lands in
// March) the way the host calendar arithmetic does.
func ExpandDates(startDate, endDate string, freq Frequency) []string {
	start, err := time.Parse(DateLayout, startDate)
	if err != nil {
		return nil
	}
	end, err := time.Parse(DateLayout, endDate)
	if err != nil {
		return nil
	}

	var dates []string
	for cur := start; !cur.After(end); {
		dates = append(dates, cur.Format(DateLayout))
		switch freq {
		case FrequencyWeekly:
			cur = cur.AddDate(0, 0, 7)
		case FrequencyMonthly:
			cur = cur.AddDate(0, 1, 0)
		default:
			cur = cur.AddDate(0, 0, 1)
		}
	}
	return dates
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ValidTime reports whether s is a well-formed HH:MM dose time.
func ValidTime(s string) bool {
	_, err := time.Parse(TimeLayout, s)
	return err == nil
}
