// Package todo holds the task record served by the api and shown on the to-do page.
package todo

// Task is a single to-do record.
type Task struct {
	ID   int    `json:"id"`
	Task string `json:"task"`
}

// Fixed returns the task list answered by GET /api/todos.
// A new slice is built on every call so callers are free to modify it.
func Fixed() []Task {
	return []Task{
		{ID: 1, Task: "Deploy app"},
		{ID: 2, Task: "Clean House"},
		{ID: 3, Task: "Wash Car"},
	}
}
