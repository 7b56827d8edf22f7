// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todo/internal/todo"
)

const (
	// SectionSeparator is the separator line around view headers.
	SectionSeparator = "------------"

	// CompletedTitle heads the completed view.
	CompletedTitle = "Completed"

	// RemainingTitle heads the remaining view.
	RemainingTitle = "Remaining"
)

// FormatTask formats a task line of the full list.
// Format: "{N:>4}  [x] {TEXT}\n" (4-wide right-aligned number, two spaces, checkbox, text)
func FormatTask(w io.Writer, num int, task todo.Task) {
	fmt.Fprintf(w, "%4d  %s %s\n", num, Checkbox(task.Completed), normalizeText(task.Text))
}

// FormatViewTask formats a task line inside a view section.
// Format: "    {N:>4}  {TEXT}\n" (4 spaces indent + 4-wide number + 2 spaces + text)
func FormatViewTask(w io.Writer, num int, task todo.Task) {
	fmt.Fprintf(w, "    %4d  %s\n", num, normalizeText(task.Text))
}

// FormatSectionHeader formats a view section header with its task count.
func FormatSectionHeader(w io.Writer, title string, count int) {
	fmt.Fprintln(w, SectionSeparator)
	fmt.Fprintf(w, "%s (%d)\n", title, count)
	fmt.Fprintln(w, SectionSeparator)
}

// FormatView writes a header followed by the view's tasks.
func FormatView(w io.Writer, title string, tasks []todo.Task) {
	FormatSectionHeader(w, title, len(tasks))
	for i, task := range tasks {
		FormatViewTask(w, i+1, task)
	}
}

// Checkbox renders the completion marker.
func Checkbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

// normalizeText normalizes task text for display.
// - Empty or whitespace-only text becomes "(untitled)"
// - Newlines are replaced with spaces
func normalizeText(text string) string {
	// Replace newlines with spaces
	text = strings.ReplaceAll(text, "\r", " ")
	text = strings.ReplaceAll(text, "\n", " ")

	// Trim and check for empty
	if strings.TrimSpace(text) == "" {
		return "(untitled)"
	}
	return text
}
