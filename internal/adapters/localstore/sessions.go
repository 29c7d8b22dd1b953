package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/verdantly/wellspring/internal/domain"
	"github.com/verdantly/wellspring/internal/ports"
)

// SessionStore is the append-only session log under the completedSessions
// key.
type SessionStore struct {
	kv  ports.KV
	log ports.Logger

	mu    sync.Mutex
	now   func() time.Time
	newID func() string
}

func NewSessionStore(kv ports.KV, log ports.Logger) *SessionStore {
	return &SessionStore{
		kv:    kv,
		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Append assigns id and timestamp when absent, normalizes the record and
// appends it to the log. The only rejection is a missing owner.
func (s *SessionStore) Append(ctx context.Context, in domain.SessionInput) (domain.Session, error) {
	if in.UserID == "" {
		return domain.Session{}, &domain.ValidationError{Field: "userId", Reason: "must not be empty"}
	}
	if in.ID == "" {
		in.ID = s.newID()
	}
	if in.OccurredAt.IsZero() {
		in.OccurredAt = s.now()
	}
	session := domain.NewSession(in)

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.kv.Get(ctx, ports.KeySessions)
	if err != nil {
		return domain.Session{}, fmt.Errorf("read session log: %w", err)
	}
	log := decodeList[domain.Session](data, s.log, ports.KeySessions)
	log = append(log, session)

	buf, err := json.Marshal(log)
	if err != nil {
		return domain.Session{}, fmt.Errorf("encode session log: %w", err)
	}
	if err := s.kv.Set(ctx, ports.KeySessions, buf); err != nil {
		return domain.Session{}, fmt.Errorf("write session log: %w", err)
	}
	return session, nil
}

// ListByUser returns the user's sessions in insertion order. Callers
// needing recency order sort explicitly.
func (s *SessionStore) ListByUser(ctx context.Context, userID string) ([]domain.Session, error) {
	data, err := s.kv.Get(ctx, ports.KeySessions)
	if err != nil {
		return nil, fmt.Errorf("read session log: %w", err)
	}

	out := []domain.Session{}
	for _, session := range decodeList[domain.Session](data, s.log, ports.KeySessions) {
		if session.UserID == userID {
			out = append(out, session)
		}
	}
	return out, nil
}
