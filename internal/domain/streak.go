package domain

import "time"

// Streak math keys on calendar days, not timestamps. Every session's
// OccurredAt is collapsed to its calendar day in a single configured
// location; the original data was written with device-local midnights, so
// one location is applied uniformly rather than guessing per record.

const dayFormat = "2006-01-02"

func dayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(dayFormat)
}

// startOfDay returns local midnight of t's calendar day in loc.
func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// CurrentStreak counts consecutive calendar days with at least one session,
// ending at asOf's day inclusive. A session on asOf's day is required for a
// nonzero streak; the backward walk stops at the first day without one and
// never skips a day. Sessions dated after asOf's day cannot extend the
// streak: the walk only ever visits asOf's day and earlier.
func CurrentStreak(sessions []Session, asOf time.Time, loc *time.Location) int {
	if len(sessions) == 0 {
		return 0
	}

	days := make(map[string]struct{}, len(sessions))
	for _, s := range sessions {
		days[dayKey(s.OccurredAt, loc)] = struct{}{}
	}

	streak := 0
	for day := startOfDay(asOf, loc); ; day = day.AddDate(0, 0, -1) {
		if _, ok := days[day.Format(dayFormat)]; !ok {
			break
		}
		streak++
	}
	return streak
}

// LongestStreakUpdate is the only mutation path for a user's cached longest
// streak. The cached value is monotonically non-decreasing: it is raised to
// the current streak when exceeded and never lowered.
func LongestStreakUpdate(existingLongest, current int) int {
	if current > existingLongest {
		return current
	}
	return existingLongest
}

// ActiveDaysInWindow reports, for each of windowLengthDays consecutive days
// starting at windowStart's calendar day, whether at least one session
// occurred on that day. Used for the 7-day and 30-day activity calendars.
func ActiveDaysInWindow(sessions []Session, windowStart time.Time, windowLengthDays int, loc *time.Location) []bool {
	days := make(map[string]struct{}, len(sessions))
	for _, s := range sessions {
		days[dayKey(s.OccurredAt, loc)] = struct{}{}
	}

	active := make([]bool, windowLengthDays)
	day := startOfDay(windowStart, loc)
	for i := range active {
		_, active[i] = days[day.Format(dayFormat)]
		day = day.AddDate(0, 0, 1)
	}
	return active
}
