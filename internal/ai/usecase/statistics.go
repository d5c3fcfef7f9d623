package usecase

import (
	"time"

	"smart-todo/internal/ai"
	"smart-todo/internal/todo"
	"smart-todo/pkg/datemath"
)

type priorityStats struct {
	Count     int
	Completed int
	Rate      float64
}

type categoryStats struct {
	Count     int
	Completed int
}

// pendingBucket holds the first incomplete todos of one priority and how many were left out.
type pendingBucket struct {
	Shown    []todo.Todo
	Overflow int
}

type dueHourStats struct {
	Morning   int // [06:00, 12:00)
	Afternoon int // [12:00, 18:00)
	Evening   int // [18:00, 24:00)
}

type todoStatistics struct {
	Period ai.Period
	Window []todo.Todo

	Total          int
	Completed      int
	Incomplete     int
	CompletionRate float64

	ByPriority map[todo.Priority]priorityStats
	Pending    map[todo.Priority]pendingBucket
	Urgent     []todo.Todo

	Overdue     int
	DueToday    int
	DueThisWeek int

	ByCategory       map[string]categoryStats
	CreatedByWeekday [7]int
	DueHours         dueHourStats
}

// aggregate computes the statistics of the todos that fall into period at now.
func aggregate(cal *datemath.Calendar, todos []todo.Todo, period ai.Period, now time.Time) todoStatistics {
	window := windowTodos(cal, todos, period, now)
	today := cal.StartOfDay(now)
	soon := cal.AddDays(today, dueSoonDays)

	st := todoStatistics{
		Period:     period,
		Window:     window,
		Total:      len(window),
		ByPriority: make(map[todo.Priority]priorityStats, len(todo.Priorities)),
		Pending:    make(map[todo.Priority]pendingBucket, len(todo.Priorities)),
		ByCategory: make(map[string]categoryStats),
	}

	for _, t := range window {
		if t.Completed {
			st.Completed++
		}

		ps := st.ByPriority[t.Priority]
		ps.Count++
		if t.Completed {
			ps.Completed++
		}
		st.ByPriority[t.Priority] = ps

		for _, c := range t.Category {
			cs := st.ByCategory[c]
			cs.Count++
			if t.Completed {
				cs.Completed++
			}
			st.ByCategory[c] = cs
		}

		if !t.CreatedDate.IsZero() {
			st.CreatedByWeekday[t.CreatedDate.In(cal.Location()).Weekday()]++
		}

		if t.DueDate != nil {
			switch hour := t.DueDate.In(cal.Location()).Hour(); {
			case hour >= eveningStartHour:
				st.DueHours.Evening++
			case hour >= afternoonStartHour:
				st.DueHours.Afternoon++
			case hour >= morningStartHour:
				st.DueHours.Morning++
			}
		}

		if t.Completed || t.DueDate == nil {
			continue
		}
		due := *t.DueDate
		cmp := cal.CompareCivil(due, today)
		switch {
		case cmp < 0:
			st.Overdue++
		case cmp == 0:
			st.DueToday++
		}
		if cmp >= 0 && cal.CompareCivil(due, soon) <= 0 {
			st.DueThisWeek++
		}
		if cmp <= 0 {
			st.Urgent = append(st.Urgent, t)
		}
	}

	st.Incomplete = st.Total - st.Completed
	st.CompletionRate = percent(st.Completed, st.Total)
	for p, ps := range st.ByPriority {
		ps.Rate = percent(ps.Completed, ps.Count)
		st.ByPriority[p] = ps
	}

	for _, p := range todo.Priorities {
		pending := todo.Filter{Status: todo.StatusActive, Priority: p}.Apply(window)
		b := pendingBucket{Shown: pending}
		if len(pending) > priorityDisplayCap {
			b.Shown = pending[:priorityDisplayCap]
			b.Overflow = len(pending) - priorityDisplayCap
		}
		st.Pending[p] = b
	}

	return st
}

// windowTodos keeps the todos created or due within the period.
func windowTodos(cal *datemath.Calendar, todos []todo.Todo, period ai.Period, now time.Time) []todo.Todo {
	var in func(time.Time) bool
	if period == ai.PeriodWeek {
		start, end := cal.WeekBounds(now)
		in = func(t time.Time) bool { return !t.Before(start) && !t.After(end) }
	} else {
		in = func(t time.Time) bool { return cal.SameDay(t, now) }
	}

	out := make([]todo.Todo, 0, len(todos))
	for _, t := range todos {
		if (!t.CreatedDate.IsZero() && in(t.CreatedDate)) || (t.DueDate != nil && in(*t.DueDate)) {
			out = append(out, t)
		}
	}
	return out
}

// percent returns 100*part/whole rounded to one decimal, or 0 when whole is 0.
func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return round1(100 * float64(part) / float64(whole))
}
