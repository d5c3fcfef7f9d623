package todo_test

import (
	"testing"

	"smart-todo/internal/todo"
)

func TestFilterApply(t *testing.T) {
	todos := []todo.Todo{
		{ID: "1", Title: "Write report", Priority: todo.PriorityHigh, Category: []string{"업무"}},
		{ID: "2", Title: "Gym", Description: "leg day", Priority: todo.PriorityMedium, Category: []string{"건강"}, Completed: true},
		{ID: "3", Title: "Read book", Priority: todo.PriorityLow, Category: []string{"학습", "개인"}},
	}

	tests := []struct {
		name   string
		filter todo.Filter
		want   []string
	}{
		{name: "empty matches all", filter: todo.Filter{}, want: []string{"1", "2", "3"}},
		{name: "status all", filter: todo.Filter{Status: todo.StatusAll}, want: []string{"1", "2", "3"}},
		{name: "active", filter: todo.Filter{Status: todo.StatusActive}, want: []string{"1", "3"}},
		{name: "completed", filter: todo.Filter{Status: todo.StatusCompleted}, want: []string{"2"}},
		{name: "priority", filter: todo.Filter{Priority: todo.PriorityLow}, want: []string{"3"}},
		{name: "category", filter: todo.Filter{Category: "개인"}, want: []string{"3"}},
		{name: "query title case-insensitive", filter: todo.Filter{Query: "REPORT"}, want: []string{"1"}},
		{name: "query description", filter: todo.Filter{Query: "leg"}, want: []string{"2"}},
		{name: "combined", filter: todo.Filter{Status: todo.StatusActive, Query: "gym"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(tt.filter.Apply(todos))
			if !equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
