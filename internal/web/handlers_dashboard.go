package web

import (
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/verdantly/wellspring/internal/domain"
	"github.com/verdantly/wellspring/internal/tracker"
)

// handleDashboard assembles the landing-page view-model. The three fetches
// are independent reads, so they fan out concurrently; a failed secondary
// fetch degrades to an empty list rather than failing the page.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}
	ctx := r.Context()

	var (
		overview        tracker.Overview
		reminders       []domain.Reminder
		recommendations []domain.Recommendation
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		overview, err = s.tracker.Overview(gctx, user.Email, time.Now())
		return err
	})
	g.Go(func() error {
		reminders, _ = s.reminderRepo.ListByUser(gctx, user.Email)
		return nil
	})
	g.Go(func() error {
		recommendations, _ = s.recommendRepo.ListByUser(gctx, user.Email)
		return nil
	})

	if err := g.Wait(); err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"user": userResponse{
			Name:          user.Name,
			Email:         user.Email,
			JoinedDate:    user.JoinedDate.Format("2006-01-02"),
			Streak:        overview.CurrentStreak,
			LongestStreak: overview.LongestStreak,
			TotalSessions: overview.TotalSessions,
		},
		"overview":        overview,
		"reminders":       reminders,
		"recommendations": recommendations,
		"motivation":      motivationFor(overview.CurrentStreak),
	})
}

var motivations = []string{
	"Keep up the great work! Every day counts! 🌟",
	"You're doing amazing! Don't give up now! 💪",
	"Consistency is key! You're building great habits! 🔥",
	"Small steps lead to big results! Keep going! ⭐",
	"You're on a roll! Maintain this momentum! 🚀",
	"Your future self will thank you! Keep it up! 💚",
}

func motivationFor(streak int) string {
	if streak >= len(motivations) {
		streak = len(motivations) - 1
	}
	return motivations[streak]
}
