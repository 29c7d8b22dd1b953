package domain

import (
	"testing"
	"time"
)

func sessionOn(t *testing.T, timestamp string) Session {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		t.Fatalf("bad timestamp %q: %v", timestamp, err)
	}
	return Session{ID: timestamp, UserID: "user@example.com", OccurredAt: ts}
}

func sessionsOn(t *testing.T, timestamps ...string) []Session {
	t.Helper()
	out := make([]Session, len(timestamps))
	for i, ts := range timestamps {
		out[i] = sessionOn(t, ts)
	}
	return out
}

func TestCurrentStreak(t *testing.T) {
	asOf := time.Date(2024, 1, 5, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		sessions []Session
		want     int
	}{
		{
			name:     "empty log",
			sessions: nil,
			want:     0,
		},
		{
			name:     "single session today",
			sessions: sessionsOn(t, "2024-01-05T08:00:00Z"),
			want:     1,
		},
		{
			name:     "no session today breaks the streak",
			sessions: sessionsOn(t, "2024-01-03T08:00:00Z", "2024-01-04T08:00:00Z"),
			want:     0,
		},
		{
			name: "three consecutive days ending today",
			sessions: sessionsOn(t,
				"2024-01-03T08:00:00Z",
				"2024-01-04T20:00:00Z",
				"2024-01-05T06:00:00Z",
			),
			want: 3,
		},
		{
			name: "gap before earlier run",
			sessions: sessionsOn(t,
				"2024-01-01T08:00:00Z",
				"2024-01-02T08:00:00Z",
				"2024-01-03T08:00:00Z",
				"2024-01-05T08:00:00Z",
			),
			want: 1, // day 04 missing breaks the chain before reaching 01-03
		},
		{
			name: "multiple sessions on one day count once",
			sessions: sessionsOn(t,
				"2024-01-05T06:00:00Z",
				"2024-01-05T19:00:00Z",
				"2024-01-04T08:00:00Z",
			),
			want: 2,
		},
		{
			name: "future session never extends the streak",
			sessions: sessionsOn(t,
				"2024-01-05T08:00:00Z",
				"2024-01-06T08:00:00Z",
			),
			want: 1,
		},
		{
			name: "future session with gap today",
			sessions: sessionsOn(t, "2024-01-06T08:00:00Z"),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CurrentStreak(tt.sessions, asOf, time.UTC)
			if got != tt.want {
				t.Errorf("CurrentStreak = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCurrentStreak_ExactRunLength(t *testing.T) {
	// A run of k consecutive days ending at asOf with a gap just before it
	// yields exactly k, for several k.
	loc := time.UTC
	asOf := time.Date(2024, 3, 20, 12, 0, 0, 0, loc)

	for k := 1; k <= 10; k++ {
		var sessions []Session
		for i := 0; i < k; i++ {
			sessions = append(sessions, Session{
				ID:         string(rune('a' + i)),
				OccurredAt: asOf.AddDate(0, 0, -i),
			})
		}
		// A stray session beyond the gap must not be reached.
		sessions = append(sessions, Session{ID: "stray", OccurredAt: asOf.AddDate(0, 0, -(k + 1))})

		if got := CurrentStreak(sessions, asOf, loc); got != k {
			t.Errorf("run of %d days: CurrentStreak = %d", k, got)
		}
	}
}

func TestCurrentStreak_TimeOfDayIrrelevant(t *testing.T) {
	// A session one minute before midnight and asOf one minute after still
	// land on adjacent days and chain.
	loc := time.UTC
	sessions := sessionsOn(t,
		"2024-01-04T23:59:00Z",
		"2024-01-05T00:01:00Z",
	)
	asOf := time.Date(2024, 1, 5, 0, 2, 0, 0, loc)
	if got := CurrentStreak(sessions, asOf, loc); got != 2 {
		t.Errorf("CurrentStreak = %d, want 2", got)
	}
}

func TestLongestStreakUpdate(t *testing.T) {
	tests := []struct {
		existing, current, want int
	}{
		{0, 0, 0},
		{0, 3, 3},
		{5, 3, 5},
		{3, 4, 4},
		{7, 7, 7},
	}

	for _, tt := range tests {
		got := LongestStreakUpdate(tt.existing, tt.current)
		if got != tt.want {
			t.Errorf("LongestStreakUpdate(%d, %d) = %d, want %d", tt.existing, tt.current, got, tt.want)
		}
		if got < tt.existing || got < tt.current {
			t.Errorf("LongestStreakUpdate(%d, %d) = %d decreased", tt.existing, tt.current, got)
		}
	}
}

func TestActiveDaysInWindow(t *testing.T) {
	loc := time.UTC
	windowStart := time.Date(2024, 1, 1, 0, 0, 0, 0, loc)

	// Sessions on days 2 and 5, 0-indexed from window start.
	sessions := sessionsOn(t,
		"2024-01-03T09:00:00Z",
		"2024-01-06T21:00:00Z",
	)

	got := ActiveDaysInWindow(sessions, windowStart, 7, loc)
	want := []bool{false, false, true, false, false, true, false}

	if len(got) != len(want) {
		t.Fatalf("window length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("day %d: active = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestActiveDaysInWindow_Empty(t *testing.T) {
	got := ActiveDaysInWindow(nil, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 30, time.UTC)
	if len(got) != 30 {
		t.Fatalf("window length = %d, want 30", len(got))
	}
	for i, active := range got {
		if active {
			t.Errorf("day %d active in empty log", i)
		}
	}
}
