// Package auth is the mocked session holder. One hard-coded credential pair
// logs in; signup always succeeds; nothing is ever verified against a real
// backend.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/taskpad/taskpad/internal/model"
	"github.com/taskpad/taskpad/internal/storage"
)

var (
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	ErrEmptyEmail         = errors.New("auth: email is required")
	ErrEmptyPassword      = errors.New("auth: password is required")
)

const (
	mockEmail    = "test@test.com"
	mockPassword = "Password123!"
	mockUserID   = "12345"
)

type State string

const (
	StateAnonymous      State = "anonymous"
	StateAuthenticating State = "authenticating"
	StateAuthenticated  State = "authenticated"
)

// Service owns the session lifecycle. The simulated latency is a
// context-aware wait injected at construction, so tests run with zero delay.
type Service struct {
	kv                storage.Store
	log               *zap.Logger
	latency           time.Duration
	now               func() time.Time
	wipeTasksOnLogout bool

	mu    sync.Mutex
	state State
	user  *model.User
}

type Option func(*Service)

// WithLatency sets the simulated round-trip delay. Zero disables waiting.
func WithLatency(d time.Duration) Option {
	return func(s *Service) { s.latency = d }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithWipeTasksOnLogout reproduces the legacy behavior of clearing the
// whole shared task collection on logout. Off by default: the collection is
// shared across users and wiping it is almost certainly a demo shortcut.
func WithWipeTasksOnLogout(enabled bool) Option {
	return func(s *Service) { s.wipeTasksOnLogout = enabled }
}

func New(kv storage.Store, log *zap.Logger, opts ...Option) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Service{
		kv:    kv,
		log:   log,
		now:   func() time.Time { return time.Now().UTC() },
		state: StateAnonymous,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login succeeds only for the hard-coded pair. Any failure returns the
// service to anonymous with the session unchanged.
func (s *Service) Login(ctx context.Context, email, password string) (model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return model.User{}, ErrEmptyEmail
	}
	if password == "" {
		return model.User{}, ErrEmptyPassword
	}

	s.setState(StateAuthenticating)
	if err := s.wait(ctx, s.latency); err != nil {
		s.setState(StateAnonymous)
		return model.User{}, err
	}

	if email != mockEmail || password != mockPassword {
		s.setState(StateAnonymous)
		s.log.Info("login rejected", zap.String("email", email))
		return model.User{}, ErrInvalidCredentials
	}

	user := model.User{ID: mockUserID, Email: email}
	if err := s.saveSession(user); err != nil {
		s.setState(StateAnonymous)
		return model.User{}, err
	}
	s.setSession(user)
	s.log.Info("login succeeded", zap.String("user_id", user.ID))
	return user, nil
}

// Signup always succeeds. The user id is synthesized from the current
// timestamp; there is no user registry to collide with.
func (s *Service) Signup(ctx context.Context, email, password string) (model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return model.User{}, ErrEmptyEmail
	}
	if password == "" {
		return model.User{}, ErrEmptyPassword
	}

	s.setState(StateAuthenticating)
	if err := s.wait(ctx, s.latency); err != nil {
		s.setState(StateAnonymous)
		return model.User{}, err
	}

	user := model.User{ID: s.now().Format(time.RFC3339Nano), Email: email}
	if err := s.saveSession(user); err != nil {
		s.setState(StateAnonymous)
		return model.User{}, err
	}
	s.setSession(user)
	s.log.Info("signup succeeded", zap.String("user_id", user.ID))
	return user, nil
}

// Logout clears the persisted session and returns to anonymous. The shared
// task collection is only wiped when the legacy flag is on.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.wait(ctx, s.latency/2); err != nil {
		return err
	}
	if err := s.kv.Delete(storage.SessionKey); err != nil {
		return err
	}
	if s.wipeTasksOnLogout {
		if err := s.kv.Delete(storage.TasksKey); err != nil {
			return err
		}
		s.log.Warn("legacy logout wiped the shared task collection")
	}

	s.mu.Lock()
	s.state = StateAnonymous
	s.user = nil
	s.mu.Unlock()
	s.log.Info("logged out")
	return nil
}

// SendPasswordReset accepts any input and does nothing beyond the wait.
func (s *Service) SendPasswordReset(ctx context.Context, email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmptyEmail
	}
	if err := s.wait(ctx, s.latency); err != nil {
		return err
	}
	s.log.Info("password reset requested", zap.String("email", email))
	return nil
}

// Restore loads a persisted session at startup and trusts it without
// revalidation. A corrupt record is logged, deleted, and treated as absent.
func (s *Service) Restore() (model.User, bool) {
	raw, ok, err := s.kv.Load(storage.SessionKey)
	if err != nil {
		s.log.Warn("session read failed", zap.Error(err))
		return model.User{}, false
	}
	if !ok {
		return model.User{}, false
	}

	var user model.User
	if err := json.Unmarshal(raw, &user); err != nil || user.Validate() != nil {
		s.log.Warn("session record is corrupt, discarding", zap.Error(err))
		_ = s.kv.Delete(storage.SessionKey)
		return model.User{}, false
	}
	s.setSession(user)
	return user, true
}

func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CurrentUser returns the session user, if any.
func (s *Service) CurrentUser() (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return model.User{}, false
	}
	return *s.user, true
}

func (s *Service) saveSession(user model.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.kv.Save(storage.SessionKey, payload)
}

func (s *Service) setSession(user model.User) {
	s.mu.Lock()
	s.state = StateAuthenticated
	s.user = &user
	s.mu.Unlock()
}

func (s *Service) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

func (s *Service) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
