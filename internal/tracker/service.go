// Package tracker is the application service over the session log: it
// records completed sessions and derives the streak and history views every
// caller renders. Derivations are always computed fresh from the full log;
// the only cached value is the user's longest streak, which is raised and
// never lowered.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/verdantly/wellspring/internal/domain"
	"github.com/verdantly/wellspring/internal/ports"
)

const (
	weekWindowDays  = 7
	monthWindowDays = 30
)

// Overview is the dashboard view-model for one user.
type Overview struct {
	CurrentStreak int            `json:"currentStreak"`
	LongestStreak int            `json:"longestStreak"`
	TotalSessions int            `json:"totalSessions"`
	Summary       domain.Summary `json:"summary"`
	Week          []bool         `json:"week"`
	Month         []bool         `json:"month"`
}

type Service struct {
	sessions ports.SessionRepository
	users    ports.UserRepository
	metrics  ports.MetricsExporter
	log      ports.Logger
	loc      *time.Location
	now      func() time.Time
}

func NewService(
	sessions ports.SessionRepository,
	users ports.UserRepository,
	metrics ports.MetricsExporter,
	log ports.Logger,
	loc *time.Location,
) *Service {
	return &Service{
		sessions: sessions,
		users:    users,
		metrics:  metrics,
		log:      log,
		loc:      loc,
		now:      time.Now,
	}
}

// RecordSession appends the session and refreshes the owner's cached streak
// values. A failure to update the user record does not undo the append: the
// log is the source of truth and the cache catches up on the next record.
func (s *Service) RecordSession(ctx context.Context, userID string, in domain.SessionInput) (domain.Session, error) {
	in.UserID = userID
	session, err := s.sessions.Append(ctx, in)
	if err != nil {
		return domain.Session{}, fmt.Errorf("append session: %w", err)
	}
	s.log.Debug(fmt.Sprintf("recorded session %s for %s (%s, %d min)",
		session.ID, session.UserID, session.Style, session.DurationMinutes))

	if err := s.refreshUser(ctx, userID); err != nil {
		s.log.Error(fmt.Sprintf("refresh user %s after session: %v", userID, err))
	}

	s.metrics.SessionRecorded(ctx, string(session.Style), session.DurationMinutes)
	return session, nil
}

// Overview derives the dashboard view-model as of the given time. The
// 7-day and 30-day windows end at asOf's day.
func (s *Service) Overview(ctx context.Context, userID string, asOf time.Time) (Overview, error) {
	sessions, err := s.sessions.ListByUser(ctx, userID)
	if err != nil {
		return Overview{}, fmt.Errorf("list sessions: %w", err)
	}

	current := domain.CurrentStreak(sessions, asOf, s.loc)
	longest := current
	if user, err := s.users.GetByEmail(ctx, userID); err == nil {
		longest = domain.LongestStreakUpdate(user.LongestStreak, current)
	}

	return Overview{
		CurrentStreak: current,
		LongestStreak: longest,
		TotalSessions: len(sessions),
		Summary:       domain.Summarize(sessions),
		Week:          domain.ActiveDaysInWindow(sessions, asOf.AddDate(0, 0, -(weekWindowDays-1)), weekWindowDays, s.loc),
		Month:         domain.ActiveDaysInWindow(sessions, asOf.AddDate(0, 0, -(monthWindowDays-1)), monthWindowDays, s.loc),
	}, nil
}

// History returns the user's sessions filtered by style and sorted most
// recent first, along with their summary.
func (s *Service) History(ctx context.Context, userID string, styleFilter domain.Style) ([]domain.Session, domain.Summary, error) {
	sessions, err := s.sessions.ListByUser(ctx, userID)
	if err != nil {
		return nil, domain.Summary{}, fmt.Errorf("list sessions: %w", err)
	}
	return domain.FilterAndSort(sessions, styleFilter), domain.Summarize(sessions), nil
}

// refreshUser recomputes the user's cached values from the log. Unknown
// users are tolerated: sessions can outlive their account record.
func (s *Service) refreshUser(ctx context.Context, userID string) error {
	user, err := s.users.GetByEmail(ctx, userID)
	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		s.log.Debug(fmt.Sprintf("no account record for %s, skipping streak cache", userID))
		return nil
	}
	if err != nil {
		return err
	}

	sessions, err := s.sessions.ListByUser(ctx, userID)
	if err != nil {
		return err
	}

	current := domain.CurrentStreak(sessions, s.now(), s.loc)
	user.Streak = current
	user.LongestStreak = domain.LongestStreakUpdate(user.LongestStreak, current)
	user.TotalSessions = len(sessions)
	return s.users.Update(ctx, user)
}
