package todo_test

import (
	"testing"
	"time"

	"smart-todo/internal/todo"
)

func at(day int) *time.Time {
	t := time.Date(2026, 1, day, 9, 0, 0, 0, time.UTC)
	return &t
}

func ids(todos []todo.Todo) []string {
	out := make([]string, len(todos))
	for i, t := range todos {
		out[i] = t.ID
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSortByPriority(t *testing.T) {
	todos := []todo.Todo{
		{ID: "l1", Priority: todo.PriorityLow},
		{ID: "h1", Priority: todo.PriorityHigh},
		{ID: "m1", Priority: todo.PriorityMedium},
		{ID: "h2", Priority: todo.PriorityHigh},
		{ID: "l2", Priority: todo.PriorityLow},
	}

	asc := ids(todo.Sort(todos, todo.SortByPriority, todo.Asc))
	if want := []string{"h1", "h2", "m1", "l1", "l2"}; !equal(asc, want) {
		t.Errorf("asc = %v, want %v", asc, want)
	}

	desc := ids(todo.Sort(todos, todo.SortByPriority, todo.Desc))
	if want := []string{"l1", "l2", "m1", "h1", "h2"}; !equal(desc, want) {
		t.Errorf("desc = %v, want %v", desc, want)
	}

	if todos[0].ID != "l1" {
		t.Error("Sort must not modify its input")
	}
}

func TestSortByDueDate_UndatedLast(t *testing.T) {
	todos := []todo.Todo{
		{ID: "none1"},
		{ID: "d5", DueDate: at(5)},
		{ID: "d3", DueDate: at(3)},
		{ID: "none2"},
		{ID: "d9", DueDate: at(9)},
	}

	tests := []struct {
		dir  todo.SortDirection
		want []string
	}{
		{dir: todo.Asc, want: []string{"d3", "d5", "d9", "none1", "none2"}},
		{dir: todo.Desc, want: []string{"d9", "d5", "d3", "none1", "none2"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.dir), func(t *testing.T) {
			got := ids(todo.Sort(todos, todo.SortByDueDate, tt.dir))
			if !equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSortByTitleAndCreated(t *testing.T) {
	todos := []todo.Todo{
		{ID: "b", Title: "banana", CreatedDate: *at(2)},
		{ID: "a", Title: "Apple", CreatedDate: *at(3)},
		{ID: "c", Title: "cherry", CreatedDate: *at(1)},
	}

	if got := ids(todo.Sort(todos, todo.SortByTitle, todo.Asc)); !equal(got, []string{"a", "b", "c"}) {
		t.Errorf("title asc = %v", got)
	}
	if got := ids(todo.Sort(todos, todo.SortByCreatedDate, todo.Desc)); !equal(got, []string{"a", "b", "c"}) {
		t.Errorf("created desc = %v", got)
	}
}

func TestSortForReview(t *testing.T) {
	todos := []todo.Todo{
		{ID: "low-d1", Priority: todo.PriorityLow, DueDate: at(1)},
		{ID: "high-none", Priority: todo.PriorityHigh},
		{ID: "high-d4", Priority: todo.PriorityHigh, DueDate: at(4)},
		{ID: "med-d2", Priority: todo.PriorityMedium, DueDate: at(2)},
	}

	got := ids(todo.SortForReview(todos))
	want := []string{"high-d4", "high-none", "med-d2", "low-d1"}
	if !equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPriority(t *testing.T) {
	for _, p := range todo.Priorities {
		if !p.Valid() {
			t.Errorf("%s should be valid", p)
		}
	}
	if todo.Priority("urgent").Valid() {
		t.Error("urgent should not be valid")
	}
	if todo.Priority("urgent").Rank() <= todo.PriorityLow.Rank() {
		t.Error("unknown priority should rank after low")
	}
}
