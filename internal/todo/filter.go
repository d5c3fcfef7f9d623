package todo

import (
	"slices"
	"strings"
)

// Status filters by completion.
type Status string

const (
	StatusAll       Status = "all"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// Filter holds the list filters. Empty fields match everything.
type Filter struct {
	Status   Status
	Priority Priority
	Category string
	Query    string // case-insensitive substring of title or description
}

// Apply returns the todos matching every non-empty field of f, in their original order.
func (f Filter) Apply(todos []Todo) []Todo {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]Todo, 0, len(todos))
	for _, t := range todos {
		switch f.Status {
		case StatusActive:
			if t.Completed {
				continue
			}
		case StatusCompleted:
			if !t.Completed {
				continue
			}
		}
		if f.Priority != "" && t.Priority != f.Priority {
			continue
		}
		if f.Category != "" && !slices.Contains(t.Category, f.Category) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(t.Title), query) &&
			!strings.Contains(strings.ToLower(t.Description), query) {
			continue
		}
		out = append(out, t)
	}
	return out
}
