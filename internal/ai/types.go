package ai

import (
	"smart-todo/internal/todo"
	"smart-todo/pkg/gemini"
)

// Period selects the analysis window.
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
)

// Valid reports whether p is a supported analysis period.
func (p Period) Valid() bool {
	return p == PeriodToday || p == PeriodWeek
}

// PromptSpec pairs a natural-language instruction with the output schema it expects.
type PromptSpec struct {
	Instruction string
	Schema      *gemini.Schema
}

// --- Outputs returned to callers ---

// GeneratedTodo is a todo extracted from free text. It is never persisted by this service.
type GeneratedTodo struct {
	Title       string        `json:"title"`
	Description *string       `json:"description,omitempty"`
	DueDate     *string       `json:"due_date,omitempty"` // YYYY-MM-DD
	DueTime     *string       `json:"due_time,omitempty"` // HH:mm, 24-hour
	Priority    todo.Priority `json:"priority"`
	Category    []string      `json:"category"`
}

// TodoAnalysis is the narrative analysis of a todo collection.
type TodoAnalysis struct {
	Summary         string   `json:"summary"`
	UrgentTasks     []string `json:"urgentTasks"`
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
}

// --- UseCase Inputs ---

type GenerateTodoInput struct {
	Prompt string
}

type AnalyzeTodosInput struct {
	Todos  []todo.Todo
	Period Period
}

// --- UseCase Outputs ---

type GenerateTodoOutput struct {
	Todo GeneratedTodo
}

type AnalyzeTodosOutput struct {
	Analysis TodoAnalysis
}
