package web

import (
	"net/http"
	"strconv"
	"time"
)

func (s *Server) handleStreaks(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	overview, err := s.tracker.Overview(r.Context(), user.Email, time.Now())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"currentStreak": overview.CurrentStreak,
		"longestStreak": overview.LongestStreak,
		"totalSessions": overview.TotalSessions,
	})
}

// handleCalendar renders the fixed-length activity windows: days=7 for the
// weekly view, days=30 for the monthly one.
func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	days := 30
	if v := r.URL.Query().Get("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || (n != 7 && n != 30) {
			respondError(w, http.StatusBadRequest, "days must be 7 or 30")
			return
		}
		days = n
	}

	overview, err := s.tracker.Overview(r.Context(), user.Email, time.Now())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	active := overview.Month
	if days == 7 {
		active = overview.Week
	}
	respondJSON(w, http.StatusOK, map[string]any{"days": days, "active": active})
}
