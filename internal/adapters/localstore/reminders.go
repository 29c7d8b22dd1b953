package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/verdantly/wellspring/internal/domain"
	"github.com/verdantly/wellspring/internal/ports"
)

// ReminderStore keeps reminders under two keys: the original clients read
// "reminders" on the settings page and "wellness_reminders" in the
// notification checker. Both carry the full sequence and are written
// together.
type ReminderStore struct {
	kv  ports.KV
	log ports.Logger
	mu  sync.Mutex
}

func NewReminderStore(kv ports.KV, log ports.Logger) *ReminderStore {
	return &ReminderStore{kv: kv, log: log}
}

// Save replaces the user's reminders, leaving other users' untouched.
func (s *ReminderStore) Save(ctx context.Context, userEmail string, reminders []domain.Reminder) error {
	if userEmail == "" {
		return &domain.ValidationError{Field: "userEmail", Reason: "must not be empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load(ctx)
	if err != nil {
		return err
	}

	kept := make([]domain.Reminder, 0, len(all)+len(reminders))
	for _, r := range all {
		if r.UserEmail != userEmail {
			kept = append(kept, r)
		}
	}
	for _, r := range reminders {
		r.UserEmail = userEmail
		kept = append(kept, r)
	}
	return s.save(ctx, kept)
}

func (s *ReminderStore) ListByUser(ctx context.Context, userEmail string) ([]domain.Reminder, error) {
	all, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	out := []domain.Reminder{}
	for _, r := range all {
		if r.UserEmail == userEmail {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *ReminderStore) ListAll(ctx context.Context) ([]domain.Reminder, error) {
	return s.load(ctx)
}

// MarkNotified persists the fired state of the given reminder. The stored
// record is matched by identity under the mutex, so a Save that rewrote the
// sequence between listing and marking cannot misdirect the write; a
// reminder deleted in the meantime stays deleted.
func (s *ReminderStore) MarkNotified(ctx context.Context, fired domain.Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load(ctx)
	if err != nil {
		return err
	}
	for i, r := range all {
		if r.Matches(fired) {
			all[i] = fired
			return s.save(ctx, all)
		}
	}
	return nil
}

func (s *ReminderStore) load(ctx context.Context) ([]domain.Reminder, error) {
	data, err := s.kv.Get(ctx, ports.KeyReminders)
	if err != nil {
		return nil, fmt.Errorf("read reminders: %w", err)
	}
	if len(data) == 0 {
		// Fall back to the legacy key for data written by older clients.
		data, err = s.kv.Get(ctx, ports.KeyLegacyReminders)
		if err != nil {
			return nil, fmt.Errorf("read reminders: %w", err)
		}
	}
	return decodeList[domain.Reminder](data, s.log, ports.KeyReminders), nil
}

func (s *ReminderStore) save(ctx context.Context, reminders []domain.Reminder) error {
	buf, err := json.Marshal(reminders)
	if err != nil {
		return fmt.Errorf("encode reminders: %w", err)
	}
	if err := s.kv.Set(ctx, ports.KeyReminders, buf); err != nil {
		return fmt.Errorf("write reminders: %w", err)
	}
	if err := s.kv.Set(ctx, ports.KeyLegacyReminders, buf); err != nil {
		return fmt.Errorf("write legacy reminders: %w", err)
	}
	return nil
}
