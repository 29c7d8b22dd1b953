package web

import "net/http"

type signUpRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	JoinedDate    string `json:"joinedDate"`
	Streak        int    `json:"streak"`
	LongestStreak int    `json:"longestStreak"`
	TotalSessions int    `json:"totalSessions"`
}

func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ConfirmPassword != "" && req.ConfirmPassword != req.Password {
		respondError(w, http.StatusBadRequest, "passwords do not match")
		return
	}

	user, err := s.auth.SignUp(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"user": userResponse{
			Name:       user.Name,
			Email:      user.Email,
			JoinedDate: user.JoinedDate.Format("2006-01-02"),
		},
	})
}

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := s.auth.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user": userResponse{
			Name:          user.Name,
			Email:         user.Email,
			JoinedDate:    user.JoinedDate.Format("2006-01-02"),
			Streak:        user.Streak,
			LongestStreak: user.LongestStreak,
			TotalSessions: user.TotalSessions,
		},
	})
}

func (s *Server) handleSignOut(w http.ResponseWriter, r *http.Request) {
	if err := s.auth.SignOut(r.Context()); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}
