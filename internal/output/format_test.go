package output

import (
	"bytes"
	"testing"

	"todo/internal/testutil"
	"todo/internal/todo"
)

func TestFormatTask(t *testing.T) {
	tests := []struct {
		name string
		num  int
		task todo.Task
		want string
	}{
		{"open", 1, todo.Task{Text: "Buy milk"}, "   1  [ ] Buy milk\n"},
		{"done", 12, todo.Task{Text: "Walk dog", Completed: true}, "  12  [x] Walk dog\n"},
		{"newline", 3, todo.Task{Text: "a\nb"}, "   3  [ ] a b\n"},
		{"blank loaded text", 4, todo.Task{Text: "  "}, "   4  [ ] (untitled)\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			FormatTask(&buf, tt.num, tt.task)
			if buf.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, buf.String())
			}
		})
	}
}

func TestFormatView(t *testing.T) {
	var buf bytes.Buffer
	FormatView(&buf, CompletedTitle, []todo.Task{
		{ID: 1, Text: "Buy milk", Completed: true},
		{ID: 2, Text: "Call mom", Completed: true},
	})
	FormatView(&buf, RemainingTitle, nil)

	testutil.Golden(t, "views", buf.Bytes())
}
