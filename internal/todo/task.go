// Package todo holds the task record and the pure transformations applied to
// a task collection. Nothing here touches storage or presentation.
package todo

import "strings"

// Task is a single to-do item.
type Task struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Add validates raw and returns a new collection with a task appended.
// Validation short-circuits: empty text first, then duplicates.
// The input slice is never modified.
func Add(tasks []Task, raw string, id int64) ([]Task, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return tasks, ErrEmptyText
	}
	if HasText(tasks, text) {
		return tasks, &DuplicateError{Text: text}
	}

	out := make([]Task, len(tasks), len(tasks)+1)
	copy(out, tasks)
	return append(out, Task{ID: id, Text: text}), nil
}

// Delete returns a new collection without the task whose ID matches.
// Order of the remaining tasks is preserved. Unknown ids are a no-op.
func Delete(tasks []Task, id int64) []Task {
	out := make([]Task, 0, len(tasks))
	removed := false
	for _, t := range tasks {
		if !removed && t.ID == id {
			removed = true
			continue
		}
		out = append(out, t)
	}
	return out
}

// Toggle returns a new collection with the completed flag of the matching
// task flipped. Unknown ids are a no-op.
func Toggle(tasks []Task, id int64) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	for i := range out {
		if out[i].ID == id {
			out[i].Completed = !out[i].Completed
			break
		}
	}
	return out
}

// HasText reports whether any task's text equals text, ignoring case.
func HasText(tasks []Task, text string) bool {
	for _, t := range tasks {
		if strings.EqualFold(t.Text, text) {
			return true
		}
	}
	return false
}

// Find returns the task with the given id.
func Find(tasks []Task, id int64) (Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}
