package schedule

import "strings"

// Status is the state of a single scheduled dose.
type Status string

const (
	StatusPending Status = "pending"
	StatusTaken   Status = "taken"
	StatusMissed  Status = "missed"
)

// Valid reports whether s is one of the known dose statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusTaken, StatusMissed:
		return true
	}
	return false
}

// Log maps a calendar date (YYYY-MM-DD) to the status of each dose time
// (HH:MM) scheduled on that date. Access is always by key; insertion order
// carries no meaning.
type Log map[string]map[string]Status

// FilterTimes returns times with blank and duplicate entries removed,
// preserving the order of first appearance. Medication records are expected
// to hold the filtered list; this runs once at creation time.
func FilterTimes(times []string) []string {
	filtered := make([]string, 0, len(times))
	seen := make(map[string]struct{}, len(times))
	for _, t := range times {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		filtered = append(filtered, t)
	}
	return filtered
}

// DayPatch returns a fresh all-pending entry for one day.
func DayPatch(times []string) map[string]Status {
	entry := make(map[string]Status, len(times))
	for _, t := range times {
		entry[t] = StatusPending
	}
	return entry
}

// NewLog seeds the full log for a medication: one entry per date, every
// dose time pending. An empty time list still produces an entry per date,
// with an empty time map.
func NewLog(dates, times []string) Log {
	log := make(Log, len(dates))
	for _, d := range dates {
		log[d] = DayPatch(times)
	}
	return log
}

// EnsureDay synthesizes an all-pending entry for date if the log has none,
// and reports whether it did. Existing entries, including their statuses,
// are never touched, so repeated calls are idempotent. Callers that get
// true back are expected to persist the new entry.
func (l Log) EnsureDay(date string, times []string) bool {
	if _, ok := l[date]; ok {
		return false
	}
	l[date] = DayPatch(times)
	return true
}
