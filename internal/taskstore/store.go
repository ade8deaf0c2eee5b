package taskstore

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/taskpad/taskpad/internal/model"
	"github.com/taskpad/taskpad/internal/storage"
)

var ErrNoSession = errors.New("taskstore: no user loaded")

// Store holds the current user's tasks in memory and writes every mutation
// back through the storage adapter. The persisted collection is shared by
// all users and partitioned only by the userId field, so each write is a
// read-modify-write that preserves other users' records untouched.
type Store struct {
	kv    storage.Store
	log   *zap.Logger
	now   func() time.Time
	newID func() string

	mu     sync.Mutex
	userID string
	tasks  []model.Task
}

// Option overrides a Store dependency, mainly for tests.
type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDFunc(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

func New(kv storage.Store, log *zap.Logger, opts ...Option) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{
		kv:    kv,
		log:   log,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the full persisted collection and keeps only records owned by
// userID. A corrupt payload is logged and treated as empty; the caller never
// sees a read error beyond that.
func (s *Store) Load(userID string) ([]model.Task, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errors.New("taskstore: empty user id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.userID = userID
	s.tasks = nil
	for _, task := range s.readAll() {
		if task.UserID == userID {
			s.tasks = append(s.tasks, task)
		}
	}
	return s.snapshot(), nil
}

// Add creates one task from the suggestion and persists the updated
// collection. The new task is prepended so the in-memory order stays
// newest-first.
func (s *Store) Add(in model.Suggestion) ([]model.Task, error) {
	return s.AddMany([]model.Suggestion{in})
}

// AddMany creates one task per suggestion in a single persisted write. Each
// task gets its own id even when the whole batch lands within one clock
// tick.
func (s *Store) AddMany(in []model.Suggestion) ([]model.Task, error) {
	for _, suggestion := range in {
		if err := suggestion.Validate(); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.userID == "" {
		return nil, ErrNoSession
	}

	now := s.now()
	fresh := make([]model.Task, 0, len(in))
	for _, suggestion := range in {
		fresh = append(fresh, model.Task{
			ID:        s.newID(),
			Title:     strings.TrimSpace(suggestion.Title),
			Notes:     strings.TrimSpace(suggestion.Notes),
			Status:    model.StatusPending,
			CreatedAt: now,
			UpdatedAt: now,
			UserID:    s.userID,
		})
	}
	s.tasks = append(fresh, s.tasks...)
	if err := s.persist(); err != nil {
		return nil, err
	}
	return s.snapshot(), nil
}

// Update merges the patch into the matching task and refreshes updatedAt.
// An unknown id is a silent no-op.
func (s *Store) Update(id string, patch model.TaskPatch) ([]model.Task, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.userID == "" {
		return nil, ErrNoSession
	}

	changed := false
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		if patch.Title != nil {
			s.tasks[i].Title = strings.TrimSpace(*patch.Title)
		}
		if patch.Notes != nil {
			s.tasks[i].Notes = strings.TrimSpace(*patch.Notes)
		}
		if patch.Status != nil {
			s.tasks[i].Status = *patch.Status
		}
		s.tasks[i].UpdatedAt = s.now()
		changed = true
		break
	}
	if changed {
		if err := s.persist(); err != nil {
			return nil, err
		}
	}
	return s.snapshot(), nil
}

// Delete removes the matching task. Deleting an absent id is a no-op.
func (s *Store) Delete(id string) ([]model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.userID == "" {
		return nil, ErrNoSession
	}

	kept := s.tasks[:0]
	removed := false
	for _, task := range s.tasks {
		if task.ID == id {
			removed = true
			continue
		}
		kept = append(kept, task)
	}
	s.tasks = kept
	if removed {
		if err := s.persist(); err != nil {
			return nil, err
		}
	}
	return s.snapshot(), nil
}

// ToggleStatus flips pending and completed and refreshes updatedAt.
func (s *Store) ToggleStatus(id string) ([]model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.userID == "" {
		return nil, ErrNoSession
	}

	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		s.tasks[i].Status = s.tasks[i].Status.Toggle()
		s.tasks[i].UpdatedAt = s.now()
		if err := s.persist(); err != nil {
			return nil, err
		}
		break
	}
	return s.snapshot(), nil
}

// Tasks returns the current in-memory collection.
func (s *Store) Tasks() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Reset drops the in-memory state without touching storage. Called on
// logout, before another user loads.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = ""
	s.tasks = nil
}

func (s *Store) snapshot() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// readAll parses the shared collection from storage. Parse failures are
// absorbed: log and return empty.
func (s *Store) readAll() []model.Task {
	raw, ok, err := s.kv.Load(storage.TasksKey)
	if err != nil {
		s.log.Warn("task collection read failed", zap.Error(err))
		return nil
	}
	if !ok || len(raw) == 0 {
		return nil
	}
	var all []model.Task
	if err := json.Unmarshal(raw, &all); err != nil {
		s.log.Warn("task collection is corrupt, treating as empty", zap.Error(err))
		return nil
	}
	return all
}

// persist writes the union of other users' stored records and the current
// user's in-memory set. Callers hold s.mu.
func (s *Store) persist() error {
	merged := make([]model.Task, 0, len(s.tasks))
	for _, task := range s.readAll() {
		if task.UserID != s.userID {
			merged = append(merged, task)
		}
	}
	merged = append(merged, s.tasks...)

	payload, err := json.Marshal(merged)
	if err != nil {
		return err
	}
	if err := s.kv.Save(storage.TasksKey, payload); err != nil {
		s.log.Error("task collection write failed", zap.Error(err))
		return err
	}
	return nil
}
