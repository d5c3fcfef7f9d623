package http

import (
	"fmt"
	"strings"
	"time"

	"smart-todo/internal/ai"
	"smart-todo/internal/todo"
)

// Timestamp layouts accepted from clients, tried in order.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z07",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// --- Request DTOs ---

type generateTodoReq struct {
	Prompt any `json:"prompt"`
}

func (r generateTodoReq) toInput() ai.GenerateTodoInput {
	// A non-string prompt is treated as missing.
	prompt, _ := r.Prompt.(string)
	return ai.GenerateTodoInput{Prompt: prompt}
}

// ---

type todoReq struct {
	ID          any      `json:"id"`
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	DueDate     *string  `json:"due_date"`
	Priority    string   `json:"priority"`
	Category    []string `json:"category"`
	Completed   bool     `json:"completed"`
	CreatedDate *string  `json:"created_date"`
}

type analyzeTodosReq struct {
	Todos  []todoReq `json:"todos"  binding:"required"`
	Period string    `json:"period" binding:"required,oneof=today week"`
}

func (r analyzeTodosReq) toInput(loc *time.Location) ai.AnalyzeTodosInput {
	todos := make([]todo.Todo, 0, len(r.Todos))
	for _, t := range r.Todos {
		item := todo.Todo{
			Title:     t.Title,
			Priority:  todo.Priority(strings.ToLower(strings.TrimSpace(t.Priority))),
			Category:  t.Category,
			Completed: t.Completed,
			DueDate:   parseTimestamp(t.DueDate, loc),
		}
		if t.ID != nil {
			item.ID = fmt.Sprint(t.ID)
		}
		if t.Description != nil {
			item.Description = *t.Description
		}
		if created := parseTimestamp(t.CreatedDate, loc); created != nil {
			item.CreatedDate = *created
		}
		todos = append(todos, item)
	}
	return ai.AnalyzeTodosInput{
		Todos:  todos,
		Period: ai.Period(r.Period),
	}
}

// parseTimestamp returns nil for absent or unparseable values.
// Values without an offset are read in loc.
func parseTimestamp(s *string, loc *time.Location) *time.Time {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, v, loc); err == nil {
			return &t
		}
	}
	return nil
}

// --- Response DTOs ---

type generatedTodoResp struct {
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	DueDate     *string  `json:"due_date,omitempty"`
	DueTime     *string  `json:"due_time,omitempty"`
	Priority    string   `json:"priority"`
	Category    []string `json:"category"`
}

func (h *handler) newGenerateTodoResp(out ai.GenerateTodoOutput) generatedTodoResp {
	t := out.Todo
	return generatedTodoResp{
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		DueTime:     t.DueTime,
		Priority:    string(t.Priority),
		Category:    t.Category,
	}
}

type analysisResp struct {
	Summary         string   `json:"summary"`
	UrgentTasks     []string `json:"urgentTasks"`
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
}

func (h *handler) newAnalysisResp(out ai.AnalyzeTodosOutput) analysisResp {
	a := out.Analysis
	return analysisResp{
		Summary:         a.Summary,
		UrgentTasks:     nonNil(a.UrgentTasks),
		Insights:        nonNil(a.Insights),
		Recommendations: nonNil(a.Recommendations),
	}
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
