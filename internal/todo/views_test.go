package todo_test

import (
	"testing"

	"todo/internal/todo"
)

func TestViews_Partition(t *testing.T) {
	tasks := []todo.Task{
		{ID: 1, Text: "a", Completed: true},
		{ID: 2, Text: "b"},
		{ID: 3, Text: "c", Completed: true},
		{ID: 4, Text: "d"},
	}

	completed := todo.Completed(tasks)
	remaining := todo.Remaining(tasks)

	if len(completed)+len(remaining) != len(tasks) {
		t.Fatalf("views do not cover the collection: %d + %d != %d", len(completed), len(remaining), len(tasks))
	}

	seen := make(map[int64]int)
	for _, task := range completed {
		if !task.Completed {
			t.Errorf("completed view holds open task %+v", task)
		}
		seen[task.ID]++
	}
	for _, task := range remaining {
		if task.Completed {
			t.Errorf("remaining view holds completed task %+v", task)
		}
		seen[task.ID]++
	}
	for _, task := range tasks {
		if seen[task.ID] != 1 {
			t.Errorf("task %d appears %d times across views", task.ID, seen[task.ID])
		}
	}

	if completed[0].ID != 1 || completed[1].ID != 3 {
		t.Errorf("completed view out of order: %+v", completed)
	}
	if remaining[0].ID != 2 || remaining[1].ID != 4 {
		t.Errorf("remaining view out of order: %+v", remaining)
	}
}

func TestViews_Empty(t *testing.T) {
	if got := todo.Completed(nil); len(got) != 0 {
		t.Errorf("expected empty, got %+v", got)
	}
	if got := todo.Remaining(nil); len(got) != 0 {
		t.Errorf("expected empty, got %+v", got)
	}
}
