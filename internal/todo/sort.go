package todo

import (
	"slices"
	"strings"
)

// SortField names a sortable todo attribute.
type SortField string

const (
	SortByCreatedDate SortField = "created_date"
	SortByDueDate     SortField = "due_date"
	SortByPriority    SortField = "priority"
	SortByTitle       SortField = "title"
)

// SortDirection is ascending or descending.
type SortDirection string

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

// Sort returns a stably sorted copy of todos.
// Ascending priority puts high first. Todos without a due date always sort last by due_date.
func Sort(todos []Todo, field SortField, dir SortDirection) []Todo {
	out := slices.Clone(todos)
	sign := 1
	if dir == Desc {
		sign = -1
	}

	slices.SortStableFunc(out, func(a, b Todo) int {
		switch field {
		case SortByDueDate:
			switch {
			case a.DueDate == nil && b.DueDate == nil:
				return 0
			case a.DueDate == nil:
				return 1
			case b.DueDate == nil:
				return -1
			}
			return sign * a.DueDate.Compare(*b.DueDate)
		case SortByPriority:
			return sign * (a.Priority.Rank() - b.Priority.Rank())
		case SortByTitle:
			return sign * strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		default:
			return sign * a.CreatedDate.Compare(b.CreatedDate)
		}
	})
	return out
}

// SortForReview orders todos by priority, then due date (undated last), then creation time.
func SortForReview(todos []Todo) []Todo {
	out := Sort(todos, SortByCreatedDate, Asc)
	out = Sort(out, SortByDueDate, Asc)
	return Sort(out, SortByPriority, Asc)
}
