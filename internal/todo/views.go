package todo

// Completed returns the completed tasks in collection order.
func Completed(tasks []Task) []Task {
	return filter(tasks, true)
}

// Remaining returns the tasks not yet completed, in collection order.
func Remaining(tasks []Task) []Task {
	return filter(tasks, false)
}

func filter(tasks []Task, completed bool) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Completed == completed {
			out = append(out, t)
		}
	}
	return out
}
