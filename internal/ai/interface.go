package ai

import (
	"context"

	"smart-todo/pkg/gemini"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// GenerateTodo converts a free-text sentence into a structured todo.
	GenerateTodo(ctx context.Context, input GenerateTodoInput) (GenerateTodoOutput, error)

	// AnalyzeTodos summarizes the todos of the selected period.
	AnalyzeTodos(ctx context.Context, input AnalyzeTodosInput) (AnalyzeTodosOutput, error)
}

// Generator performs one schema-constrained generation call.
// *gemini.Client satisfies it.
type Generator interface {
	GenerateJSON(ctx context.Context, prompt string, schema *gemini.Schema, out any) error
}
