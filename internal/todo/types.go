package todo

import "time"

// Priority is the urgency level of a todo.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Priorities lists every valid priority in sort order (high first).
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Rank orders priorities: high < medium < low. Unknown values rank last.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return 3
}

// Categories the generator is allowed to assign.
const (
	CategoryWork     = "업무"
	CategoryPersonal = "개인"
	CategoryHealth   = "건강"
	CategoryStudy    = "학습"
)

// GeneratedCategories is the closed vocabulary used for generation.
var GeneratedCategories = []string{CategoryWork, CategoryPersonal, CategoryHealth, CategoryStudy}

// DefaultCategory is used when no category keyword is present.
const DefaultCategory = CategoryPersonal

// Todo is a task record owned by the storage backend. The service only reads it.
type Todo struct {
	ID          string
	UserID      string
	Title       string
	Description string
	CreatedDate time.Time // zero when unknown
	DueDate     *time.Time
	Priority    Priority
	Category    []string
	Completed   bool
}

// HasDueDate reports whether the todo has a due date.
func (t Todo) HasDueDate() bool {
	return t.DueDate != nil
}
