// Package auth manages accounts and the active sign-in token. There is no
// security model here: passwords are stored and compared in plaintext for
// compatibility with the records the original clients wrote.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/verdantly/wellspring/internal/domain"
	"github.com/verdantly/wellspring/internal/ports"
)

// ErrInvalidCredentials is returned on a failed sign-in. The caller shows a
// message; nothing is retried.
var ErrInvalidCredentials = errors.New("invalid email or password")

const minPasswordLen = 8

type Service struct {
	users ports.UserRepository
	kv    ports.KV
	now   func() time.Time
}

func NewService(users ports.UserRepository, kv ports.KV) *Service {
	return &Service{users: users, kv: kv, now: time.Now}
}

// SignUp creates the account and signs it in. New accounts start with zero
// streaks and sessions.
func (s *Service) SignUp(ctx context.Context, name, email, password string) (domain.User, error) {
	if email == "" {
		return domain.User{}, &domain.ValidationError{Field: "email", Reason: "must not be empty"}
	}
	if len(password) < minPasswordLen {
		return domain.User{}, &domain.ValidationError{Field: "password", Reason: fmt.Sprintf("must be at least %d characters", minPasswordLen)}
	}

	user := domain.NewUser(name, email, password, s.now())
	if err := s.users.Create(ctx, user); err != nil {
		return domain.User{}, err
	}
	if err := s.setTokens(ctx, email); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (s *Service) SignIn(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		return domain.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, err
	}
	if user.Password != password {
		return domain.User{}, ErrInvalidCredentials
	}
	if err := s.setTokens(ctx, email); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// CurrentUser resolves the active sign-in token to its account.
func (s *Service) CurrentUser(ctx context.Context) (domain.User, error) {
	data, err := s.kv.Get(ctx, ports.KeyCurrentUser)
	if err != nil {
		return domain.User{}, fmt.Errorf("read sign-in token: %w", err)
	}
	if len(data) == 0 {
		return domain.User{}, &domain.NotFoundError{Kind: "session", Key: ports.KeyCurrentUser}
	}
	return s.users.GetByEmail(ctx, string(data))
}

func (s *Service) SignOut(ctx context.Context) error {
	if err := s.kv.Delete(ctx, ports.KeyCurrentUser); err != nil {
		return fmt.Errorf("clear sign-in token: %w", err)
	}
	if err := s.kv.Delete(ctx, ports.KeyWellnessSession); err != nil {
		return fmt.Errorf("clear sign-in token: %w", err)
	}
	return nil
}

// setTokens writes both token keys. Different pages of the original client
// read different keys, so the two always move together.
func (s *Service) setTokens(ctx context.Context, email string) error {
	if err := s.kv.Set(ctx, ports.KeyCurrentUser, []byte(email)); err != nil {
		return fmt.Errorf("write sign-in token: %w", err)
	}
	session, err := json.Marshal(map[string]string{"email": email})
	if err != nil {
		return fmt.Errorf("encode sign-in token: %w", err)
	}
	if err := s.kv.Set(ctx, ports.KeyWellnessSession, session); err != nil {
		return fmt.Errorf("write sign-in token: %w", err)
	}
	return nil
}
