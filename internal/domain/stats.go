package domain

import (
	"math"
	"sort"
)

// Summary holds aggregate history statistics for one user's session log.
type Summary struct {
	TotalSessions        int     `json:"totalSessions"`
	TotalDurationMinutes int     `json:"totalDuration"`
	AverageRating        float64 `json:"avgRating"`
}

// Summarize derives a Summary from a session log. Appended records were
// normalized, but records written by older clients may carry zero or
// negative durations and out-of-range ratings, so the duration default and
// the [0, 5] rating clamp are applied again here. AverageRating is rounded
// to one decimal place and zero for an empty log.
func Summarize(sessions []Session) Summary {
	sum := Summary{TotalSessions: len(sessions)}
	if len(sessions) == 0 {
		return sum
	}

	var ratingTotal float64
	for _, s := range sessions {
		d := s.DurationMinutes
		if d <= 0 {
			d = DefaultDurationMinutes
		}
		sum.TotalDurationMinutes += d

		r := s.Rating
		if r < 0 {
			r = 0
		}
		if r > 5 {
			r = 5
		}
		ratingTotal += r
	}

	sum.AverageRating = math.Round(ratingTotal/float64(len(sessions))*10) / 10
	return sum
}

// FilterAndSort returns the sessions matching styleFilter (all of them when
// the filter is empty), most recent first. The sort is stable: sessions
// sharing an OccurredAt keep their insertion order.
func FilterAndSort(sessions []Session, styleFilter Style) []Session {
	out := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		if styleFilter == "" || s.Style == styleFilter {
			out = append(out, s)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OccurredAt.After(out[j].OccurredAt)
	})
	return out
}
