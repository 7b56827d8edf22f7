package todo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Encode serializes the collection as a JSON array.
// An empty or nil collection encodes as "[]".
func Encode(tasks []Task) (string, error) {
	if tasks == nil {
		tasks = []Task{}
	}
	b, err := json.Marshal(tasks)
	if err != nil {
		return "", fmt.Errorf("encode tasks: %w", err)
	}
	return string(b), nil
}

// Decode parses a JSON array of task records.
// Only a value that is not a JSON array is an error. Records are not
// validated: a field of the wrong type is left at its zero value and the
// rest of the record is kept. Elements that are not objects are skipped.
func Decode(s string) ([]Task, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}

	tasks := make([]Task, 0, len(raw))
	for _, r := range raw {
		r = bytes.TrimSpace(r)
		if len(r) == 0 || r[0] != '{' {
			continue
		}
		var t Task
		if err := json.Unmarshal(r, &t); err != nil {
			var typeErr *json.UnmarshalTypeError
			if !errors.As(err, &typeErr) {
				continue
			}
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}
