package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"todo/internal/service"
	"todo/internal/todo"
)

// TaskRef represents a parsed task reference.
type TaskRef struct {
	Num  int   // 1-based position in the full list
	ID   int64 // task id, set when ByID is true
	ByID bool  // true for "@<id>" references
}

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// ParseTaskRef parses a task reference from args.
//
// Parsing rules:
// 1. No args → ErrTaskRefRequired
// 2. All digits (e.g., 3) → position in the full list
// 3. '@' followed by digits (e.g., @1700000000000) → task id
// 4. Otherwise → error: invalid task reference: <ref>
// Exactly one reference is accepted.
func ParseTaskRef(args []string) (TaskRef, error) {
	if len(args) == 0 {
		return TaskRef{}, ErrTaskRefRequired
	}
	if len(args) > 1 {
		return TaskRef{}, fmt.Errorf("unexpected argument: %s", args[1])
	}

	arg := args[0]

	if isAllDigits(arg) {
		num, err := strconv.Atoi(arg)
		if err != nil {
			return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
		}
		return TaskRef{Num: num}, nil
	}

	if rest, ok := strings.CutPrefix(arg, "@"); ok && isAllDigits(rest) {
		id, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
		}
		return TaskRef{ID: id, ByID: true}, nil
	}

	return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ResolveTaskRef finds the task a reference points to.
// A position outside the list is an error. An unknown id is not: found is
// false and the caller treats the operation as a no-op.
func ResolveTaskRef(svc service.Service, ref TaskRef) (task todo.Task, found bool, err error) {
	tasks := svc.Tasks()

	if ref.ByID {
		task, found = todo.Find(tasks, ref.ID)
		return task, found, nil
	}

	if ref.Num < 1 || ref.Num > len(tasks) {
		return todo.Task{}, false, fmt.Errorf("task number out of range: %d", ref.Num)
	}
	return tasks[ref.Num-1], true, nil
}
