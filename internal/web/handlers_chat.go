package web

import (
	"fmt"
	"net/http"

	"github.com/verdantly/wellspring/internal/ports"
)

// handleChat proxies one message through the chatbot transport. Transport
// failures come back as a recoverable error payload: the session carries on.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if s.chat == nil {
		respondError(w, http.StatusServiceUnavailable, "chatbot is not configured")
		return
	}

	var req ports.ChatRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Message == "" {
		respondError(w, http.StatusBadRequest, "message is required")
		return
	}
	if req.Email == "" {
		if user, err := s.auth.CurrentUser(r.Context()); err == nil {
			req.Email = user.Email
		}
	}

	reply, err := s.chat.Send(r.Context(), req)
	if err != nil {
		s.log.Error(fmt.Sprintf("chatbot: %v", err))
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true, "response": reply})
}
