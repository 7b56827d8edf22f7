package todo

import (
	"errors"
	"fmt"
)

// ErrEmptyText is returned by Add when the text is empty after trimming.
var ErrEmptyText = errors.New("please enter a task before adding")

// DuplicateError is returned by Add when a task with the same text,
// compared case-insensitively, already exists.
type DuplicateError struct {
	Text string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("the task %q already exists in your to-do list", e.Text)
}

// IsValidation reports whether err is one of the add validation failures.
func IsValidation(err error) bool {
	var dup *DuplicateError
	return errors.Is(err, ErrEmptyText) || errors.As(err, &dup)
}
