package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/verdantly/wellspring/internal/domain"
	"github.com/verdantly/wellspring/internal/ports"
)

// UserStore keeps account records under the users key.
type UserStore struct {
	kv  ports.KV
	log ports.Logger
	mu  sync.Mutex
}

func NewUserStore(kv ports.KV, log ports.Logger) *UserStore {
	return &UserStore{kv: kv, log: log}
}

func (s *UserStore) Create(ctx context.Context, user domain.User) error {
	if user.Email == "" {
		return &domain.ValidationError{Field: "email", Reason: "must not be empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.Email == user.Email {
			return &domain.ValidationError{Field: "email", Reason: "already registered"}
		}
	}
	return s.save(ctx, append(users, user))
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	users, err := s.load(ctx)
	if err != nil {
		return domain.User{}, err
	}
	for _, u := range users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, &domain.NotFoundError{Kind: "user", Key: email}
}

// Update rewrites the record matching user.Email in place. The only fields
// this service ever raises are the cached streak values and the session
// counter.
func (s *UserStore) Update(ctx context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load(ctx)
	if err != nil {
		return err
	}
	for i, u := range users {
		if u.Email == user.Email {
			users[i] = user
			return s.save(ctx, users)
		}
	}
	return &domain.NotFoundError{Kind: "user", Key: user.Email}
}

func (s *UserStore) load(ctx context.Context) ([]domain.User, error) {
	data, err := s.kv.Get(ctx, ports.KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("read users: %w", err)
	}
	return decodeList[domain.User](data, s.log, ports.KeyUsers), nil
}

func (s *UserStore) save(ctx context.Context, users []domain.User) error {
	buf, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	if err := s.kv.Set(ctx, ports.KeyUsers, buf); err != nil {
		return fmt.Errorf("write users: %w", err)
	}
	return nil
}
