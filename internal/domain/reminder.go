package domain

import (
	"slices"
	"strings"
	"time"
)

// DefaultActivity is the activity name announced when a reminder does not
// name one.
const DefaultActivity = "wellness session"

// Reminder is a scheduled nudge to practice. Two kinds share the record
// shape: recurring reminders carry a set of weekdays, one-off reminders
// carry a single date. Both were written by the original clients under the
// "reminders" and "wellness_reminders" keys.
type Reminder struct {
	UserEmail    string    `json:"userEmail"`
	Enabled      bool      `json:"enabled"`
	Time         string    `json:"time"`           // "15:04"
	Days         []string  `json:"days,omitempty"` // weekday names; empty for one-off
	Date         string    `json:"date,omitempty"` // "2006-01-02"; set for one-off
	Type         string    `json:"type,omitempty"` // tone: gentle, motivational, supportive
	Activity     string    `json:"activity,omitempty"`
	Created      time.Time `json:"created"`
	Notified     bool      `json:"notified"`
	LastNotified string    `json:"lastNotified,omitempty"` // day a recurring reminder last fired
}

// ActivityName returns the activity to announce when the reminder fires.
func (r Reminder) ActivityName() string {
	if r.Activity != "" {
		return r.Activity
	}
	return DefaultActivity
}

// Due reports whether the reminder should fire at now. A one-off reminder
// fires once, when its date and time have passed. A recurring reminder fires
// at most once per calendar day, on its configured weekdays, once its time
// of day has passed. Malformed times never fire.
func (r Reminder) Due(now time.Time, loc *time.Location) bool {
	if !r.Enabled {
		return false
	}

	at, err := time.ParseInLocation("15:04", r.Time, loc)
	if err != nil {
		return false
	}
	local := now.In(loc)

	if len(r.Days) == 0 {
		if r.Notified || r.Date == "" {
			return false
		}
		day, err := time.ParseInLocation(dayFormat, r.Date, loc)
		if err != nil {
			return false
		}
		fireAt := day.Add(time.Duration(at.Hour())*time.Hour + time.Duration(at.Minute())*time.Minute)
		return !local.Before(fireAt)
	}

	today := dayKey(now, loc)
	if r.LastNotified == today {
		return false
	}
	if !weekdayIn(local.Weekday(), r.Days) {
		return false
	}
	fireAt := startOfDay(now, loc).Add(time.Duration(at.Hour())*time.Hour + time.Duration(at.Minute())*time.Minute)
	return !local.Before(fireAt)
}

// Matches reports whether two records name the same stored reminder.
// Reminders carry no id, so identity is the full configured schedule; the
// fired-state fields are excluded because they change on dispatch.
func (r Reminder) Matches(other Reminder) bool {
	return r.UserEmail == other.UserEmail &&
		r.Enabled == other.Enabled &&
		r.Time == other.Time &&
		r.Date == other.Date &&
		r.Type == other.Type &&
		r.Activity == other.Activity &&
		r.Created.Equal(other.Created) &&
		slices.Equal(r.Days, other.Days)
}

// MarkNotified records that the reminder fired at now.
func (r *Reminder) MarkNotified(now time.Time, loc *time.Location) {
	r.Notified = true
	r.LastNotified = dayKey(now, loc)
}

// weekdayIn matches stored day names loosely: the original clients wrote
// both full names ("Monday") and short ones ("mon").
func weekdayIn(wd time.Weekday, days []string) bool {
	want := strings.ToLower(wd.String())
	for _, d := range days {
		d = strings.ToLower(strings.TrimSpace(d))
		if d == "" {
			continue
		}
		if d == want || strings.HasPrefix(want, d) {
			return true
		}
	}
	return false
}
