// Package store holds the task collection and the theme flag in memory,
// loads them once from a kv.Store and writes them back after every change.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"todo/internal/kv"
	"todo/internal/logging"
	"todo/internal/service"
	"todo/internal/todo"
)

const (
	// TasksKey holds the serialized task collection.
	TasksKey = "tasks"

	// ThemeKey holds the dark mode flag as a JSON boolean.
	ThemeKey = "darkMode"
)

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source used for task ids.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger.
func WithLogger(log *logrus.Logger) Option {
	return func(s *Store) { s.log = logging.Component(log, "store") }
}

var _ service.Service = (*Store)(nil)

// Store is the in-memory task collection backed by a kv.Store.
// It is not safe for concurrent use.
type Store struct {
	kv     kv.Store
	log    *logrus.Entry
	now    func() time.Time
	tasks  []todo.Task
	dark   bool
	lastID int64
}

// Open reads the task collection and theme flag from backend.
// Absent or unparsable values fall back to an empty collection and the dark
// theme. Backend read failures are returned.
func Open(ctx context.Context, backend kv.Store, opts ...Option) (*Store, error) {
	s := &Store{
		kv:  backend,
		log: logging.Component(nil, "store"),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	tasks, err := s.loadTasks(ctx)
	if err != nil {
		return nil, err
	}
	s.tasks = tasks
	for _, t := range tasks {
		if t.ID > s.lastID {
			s.lastID = t.ID
		}
	}

	dark, err := s.loadTheme(ctx)
	if err != nil {
		return nil, err
	}
	s.dark = dark

	s.log.WithField("tasks", len(s.tasks)).Debug("store opened")
	return s, nil
}

func (s *Store) loadTasks(ctx context.Context) ([]todo.Task, error) {
	raw, ok, err := s.kv.Get(ctx, TasksKey)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", TasksKey, err)
	}
	if !ok {
		return []todo.Task{}, nil
	}
	tasks, err := todo.Decode(raw)
	if err != nil {
		s.log.WithError(err).Debug("stored tasks unreadable, starting empty")
		return []todo.Task{}, nil
	}
	return tasks, nil
}

func (s *Store) loadTheme(ctx context.Context) (bool, error) {
	raw, ok, err := s.kv.Get(ctx, ThemeKey)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", ThemeKey, err)
	}
	if !ok {
		return true, nil
	}
	var dark bool
	if err := json.Unmarshal([]byte(raw), &dark); err != nil {
		s.log.WithError(err).Debug("stored theme unreadable, using dark")
		return true, nil
	}
	return dark, nil
}

// Tasks returns a copy of the collection in display order.
func (s *Store) Tasks() []todo.Task {
	out := make([]todo.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Completed returns the completed view.
func (s *Store) Completed() []todo.Task {
	return todo.Completed(s.tasks)
}

// Remaining returns the remaining view.
func (s *Store) Remaining() []todo.Task {
	return todo.Remaining(s.tasks)
}

// AddTask validates text and appends a new task. Validation failures leave
// the collection untouched and are returned as-is.
func (s *Store) AddTask(ctx context.Context, text string) (todo.Task, error) {
	id := s.nextID()
	tasks, err := todo.Add(s.tasks, text, id)
	if err != nil {
		return todo.Task{}, err
	}
	s.lastID = id
	s.replace(ctx, tasks)
	return tasks[len(tasks)-1], nil
}

// DeleteTask removes the task with the given id.
// It reports whether a task was removed; an unknown id is a no-op.
func (s *Store) DeleteTask(ctx context.Context, id int64) bool {
	if _, ok := todo.Find(s.tasks, id); !ok {
		return false
	}
	s.replace(ctx, todo.Delete(s.tasks, id))
	return true
}

// ToggleTask flips the completed flag of the task with the given id and
// returns the updated task. An unknown id is a no-op.
func (s *Store) ToggleTask(ctx context.Context, id int64) (todo.Task, bool) {
	if _, ok := todo.Find(s.tasks, id); !ok {
		return todo.Task{}, false
	}
	tasks := todo.Toggle(s.tasks, id)
	s.replace(ctx, tasks)
	t, _ := todo.Find(tasks, id)
	return t, true
}

// DarkMode reports whether the dark theme is selected.
func (s *Store) DarkMode() bool {
	return s.dark
}

// ToggleTheme flips the theme flag, persists it and returns the new value.
func (s *Store) ToggleTheme(ctx context.Context) bool {
	s.dark = !s.dark
	if err := s.kv.Set(ctx, ThemeKey, fmt.Sprintf("%t", s.dark)); err != nil {
		s.log.WithError(err).Warn("persist theme failed")
	}
	return s.dark
}

// Close releases the backend if it holds resources.
func (s *Store) Close() error {
	if c, ok := s.kv.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// nextID returns a millisecond timestamp strictly greater than every id
// handed out or loaded so far.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	return id
}

func (s *Store) replace(ctx context.Context, tasks []todo.Task) {
	s.tasks = tasks
	s.persist(ctx)
}

// persist writes the collection to the backend. Failures are logged, never
// returned.
func (s *Store) persist(ctx context.Context) {
	raw, err := todo.Encode(s.tasks)
	if err != nil {
		s.log.WithError(err).Warn("encode tasks failed")
		return
	}
	if err := s.kv.Set(ctx, TasksKey, raw); err != nil {
		s.log.WithError(err).Warn("persist tasks failed")
		return
	}
	s.log.WithField("tasks", len(s.tasks)).Debug("tasks persisted")
}
