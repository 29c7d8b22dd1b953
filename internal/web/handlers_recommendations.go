package web

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/verdantly/wellspring/internal/domain"
)

func (s *Server) handleGenerateRecommendation(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	var profile domain.Profile
	if !decodeBody(w, r, &profile) {
		return
	}
	if profile.Date.IsZero() {
		profile.Date = time.Now()
	}

	rec := domain.Recommendation{
		ID:        uuid.NewString(),
		UserEmail: user.Email,
		Profile:   profile,
		Sessions:  domain.GeneratePlan(profile),
		Created:   time.Now(),
		Completed: []int{},
	}
	if err := s.recommendRepo.Save(r.Context(), rec); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{"success": true, "recommendation": rec})
}

func (s *Server) handleListRecommendations(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	recs, err := s.recommendRepo.ListByUser(r.Context(), user.Email)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"recommendations": recs})
}

func (s *Server) handleGetRecommendation(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.currentUser(w, r); !ok {
		return
	}

	rec, err := s.recommendRepo.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"recommendation": rec})
}
