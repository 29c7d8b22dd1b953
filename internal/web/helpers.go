package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/verdantly/wellspring/internal/auth"
	"github.com/verdantly/wellspring/internal/domain"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// respondDomainError maps the error taxonomy onto HTTP statuses: validation
// failures are the caller's to fix, missing records are 404, transport
// failures are a bad gateway, anything else is internal.
func respondDomainError(w http.ResponseWriter, err error) {
	var validation *domain.ValidationError
	var notFound *domain.NotFoundError
	var transport *domain.TransportError

	switch {
	case errors.As(err, &validation):
		respondError(w, http.StatusBadRequest, validation.Error())
	case errors.As(err, &notFound):
		respondError(w, http.StatusNotFound, notFound.Error())
	case errors.As(err, &transport):
		respondError(w, http.StatusBadGateway, transport.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}

// currentUser resolves the signed-in account or writes a 401.
func (s *Server) currentUser(w http.ResponseWriter, r *http.Request) (domain.User, bool) {
	user, err := s.auth.CurrentUser(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, "not signed in")
		return domain.User{}, false
	}
	return user, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
