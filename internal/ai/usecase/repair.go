package usecase

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"smart-todo/internal/ai"
	"smart-todo/internal/todo"
	"smart-todo/pkg/datemath"
)

var dueTimeRe = regexp.MustCompile(`^([0-1][0-9]|2[0-3]):[0-5][0-9]$`)

// rawTodo is the model output before repair. Every field may be absent.
type rawTodo struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	DueDate     *string  `json:"due_date"`
	DueTime     *string  `json:"due_time"`
	Priority    *string  `json:"priority"`
	Category    []string `json:"category"`
}

// repairTodo turns schema-shaped model output into a valid todo. It never fails.
// today is the resolution date: due dates before it are moved to it.
func repairTodo(raw rawTodo, today time.Time, cal *datemath.Calendar) ai.GeneratedTodo {
	return ai.GeneratedTodo{
		Title:       repairTitle(raw.Title),
		Description: repairDescription(raw.Description),
		DueDate:     repairDueDate(raw.DueDate, today, cal),
		Priority:    repairPriority(raw.Priority),
		Category:    repairCategory(raw.Category),
		DueTime:     repairDueTime(raw.DueTime),
	}
}

func repairTitle(title *string) string {
	if title == nil {
		return fallbackTitle
	}
	t := strings.TrimSpace(*title)
	if utf8.RuneCountInString(t) > maxTitleLength {
		t = string([]rune(t)[:truncatedTitleLen]) + titleEllipsis
	}
	if utf8.RuneCountInString(t) < minTitleLength {
		return fallbackTitle
	}
	return t
}

func repairDescription(desc *string) *string {
	if desc == nil {
		return nil
	}
	d := strings.TrimSpace(*desc)
	if d == "" {
		return nil
	}
	return &d
}

// repairDueDate clamps past dates to today. A value that is not a date is dropped.
func repairDueDate(due *string, today time.Time, cal *datemath.Calendar) *string {
	if due == nil {
		return nil
	}
	s := strings.TrimSpace(*due)
	if len(s) > len(datemath.DateFormat) {
		s = s[:len(datemath.DateFormat)]
	}
	if s == "" {
		return nil
	}
	d, err := cal.ParseCivilDate(s)
	if err != nil {
		return nil
	}
	if cal.CompareCivil(d, today) < 0 {
		d = today
	}
	out := cal.CivilDate(d)
	return &out
}

func repairPriority(p *string) todo.Priority {
	if p == nil {
		return todo.PriorityMedium
	}
	priority := todo.Priority(strings.ToLower(strings.TrimSpace(*p)))
	if !priority.Valid() {
		return todo.PriorityMedium
	}
	return priority
}

func repairCategory(categories []string) []string {
	out := make([]string, 0, len(categories))
	seen := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	if len(out) == 0 {
		return []string{todo.DefaultCategory}
	}
	return out
}

func repairDueTime(dueTime *string) *string {
	if dueTime == nil {
		return nil
	}
	t := strings.TrimSpace(*dueTime)
	if !dueTimeRe.MatchString(t) {
		t = fallbackDueTime
	}
	return &t
}
