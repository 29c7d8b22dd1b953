package ports

import (
	"context"

	"github.com/verdantly/wellspring/internal/domain"
)

// SessionRepository owns the append-only session log. Appended sessions are
// never mutated or deleted.
type SessionRepository interface {
	// Append validates, normalizes and stores a new session, returning the
	// stored copy with id and timestamp assigned.
	Append(ctx context.Context, in domain.SessionInput) (domain.Session, error)
	// ListByUser returns the user's sessions in insertion order. Unknown
	// users yield an empty slice, never an error.
	ListByUser(ctx context.Context, userID string) ([]domain.Session, error)
}

type UserRepository interface {
	Create(ctx context.Context, user domain.User) error
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	Update(ctx context.Context, user domain.User) error
}

type ReminderRepository interface {
	// Save replaces the user's reminders with the given set.
	Save(ctx context.Context, userEmail string, reminders []domain.Reminder) error
	ListByUser(ctx context.Context, userEmail string) ([]domain.Reminder, error)
	ListAll(ctx context.Context) ([]domain.Reminder, error)
	// MarkNotified persists the fired state of the given reminder. The
	// stored record is resolved by identity, not position: the sequence may
	// have been rewritten since it was listed, and a reminder deleted in the
	// meantime is left deleted.
	MarkNotified(ctx context.Context, fired domain.Reminder) error
}

type RecommendationRepository interface {
	Save(ctx context.Context, rec domain.Recommendation) error
	GetByID(ctx context.Context, id string) (domain.Recommendation, error)
	ListByUser(ctx context.Context, userEmail string) ([]domain.Recommendation, error)
}
