package web

import (
	"net/http"
	"time"

	"github.com/verdantly/wellspring/internal/domain"
)

type saveRemindersRequest struct {
	Reminders []domain.Reminder `json:"reminders"`
}

func (s *Server) handleListReminders(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	reminders, err := s.reminderRepo.ListByUser(r.Context(), user.Email)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"reminders": reminders})
}

// handleSaveReminders replaces the signed-in user's reminder set. An
// enabled reminder needs a time, and a recurring one at least one day.
func (s *Server) handleSaveReminders(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	var req saveRemindersRequest
	if !decodeBody(w, r, &req) {
		return
	}

	now := time.Now()
	for i := range req.Reminders {
		rem := &req.Reminders[i]
		if rem.Enabled && rem.Time == "" {
			respondError(w, http.StatusBadRequest, "reminder time is required")
			return
		}
		if rem.Enabled && len(rem.Days) == 0 && rem.Date == "" {
			respondError(w, http.StatusBadRequest, "select at least one day")
			return
		}
		if rem.Created.IsZero() {
			rem.Created = now
		}
	}

	if err := s.reminderRepo.Save(r.Context(), user.Email, req.Reminders); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}
