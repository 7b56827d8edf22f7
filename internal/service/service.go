// Package service defines the interface commands and the TUI use to reach
// the task collection.
package service

import (
	"context"

	"todo/internal/todo"
)

// Service defines the task operations available to the presentation layer.
// store.Store is the implementation; commands never import a backend.
type Service interface {
	// Tasks returns the full collection in display order.
	Tasks() []todo.Task

	// Completed returns completed tasks in collection order.
	Completed() []todo.Task

	// Remaining returns open tasks in collection order.
	Remaining() []todo.Task

	// AddTask validates and appends a task.
	// Returns todo.ErrEmptyText or *todo.DuplicateError on rejection.
	AddTask(ctx context.Context, text string) (todo.Task, error)

	// DeleteTask removes a task by id. Returns false if no task matched.
	DeleteTask(ctx context.Context, id int64) bool

	// ToggleTask flips a task's completion. Returns false if no task matched.
	ToggleTask(ctx context.Context, id int64) (todo.Task, bool)

	// DarkMode reports the current theme.
	DarkMode() bool

	// ToggleTheme flips the theme and returns the new value.
	ToggleTheme(ctx context.Context) bool
}
