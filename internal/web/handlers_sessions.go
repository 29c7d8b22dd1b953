package web

import (
	"net/http"
	"time"

	"github.com/verdantly/wellspring/internal/domain"
)

type recordSessionRequest struct {
	Title       string            `json:"title"`
	Style       string            `json:"style"`
	Duration    int               `json:"duration"`
	Description string            `json:"description"`
	Rating      float64           `json:"rating"`
	Date        *time.Time        `json:"date,omitempty"`
	Exercises   []domain.Exercise `json:"exercises,omitempty"`
}

func (s *Server) handleRecordSession(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	var req recordSessionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	in := domain.SessionInput{
		Style:           domain.Style(req.Style),
		Title:           req.Title,
		Description:     req.Description,
		DurationMinutes: req.Duration,
		Rating:          req.Rating,
		Exercises:       req.Exercises,
	}
	if req.Date != nil {
		in.OccurredAt = *req.Date
	}

	session, err := s.tracker.RecordSession(r.Context(), user.Email, in)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{"success": true, "session": session})
}

type historyItem struct {
	domain.Session
	Icon string `json:"icon"`
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	filter := domain.Style(r.URL.Query().Get("style"))
	if filter == "all" {
		filter = ""
	}

	sessions, summary, err := s.tracker.History(r.Context(), user.Email, filter)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	items := make([]historyItem, len(sessions))
	for i, session := range sessions {
		items[i] = historyItem{Session: session, Icon: session.Style.Icon()}
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"sessions": items,
		"summary":  summary,
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	_, summary, err := s.tracker.History(r.Context(), user.Email, "")
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}
