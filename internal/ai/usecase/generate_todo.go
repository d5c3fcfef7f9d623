package usecase

import (
	"context"

	"smart-todo/internal/ai"
	"smart-todo/pkg/gemini"
	"smart-todo/pkg/metrics"
)

// GenerateTodo validates the prompt, asks the model for a structured todo and repairs the result.
func (uc *implUseCase) GenerateTodo(ctx context.Context, input ai.GenerateTodoInput) (ai.GenerateTodoOutput, error) {
	if err := validatePrompt(input.Prompt); err != nil {
		uc.l.Warnf(ctx, "%s: invalid prompt %q: %v", LogPrefixGenerateTodo, preview(input.Prompt), err)
		metrics.IncrementTodoGeneration(outcomeInvalidInput)
		return ai.GenerateTodoOutput{}, err
	}
	text := normalizePrompt(input.Prompt)

	refs := uc.calendar.Resolve(uc.now())
	spec := buildTodoPrompt(text, refs)

	var raw rawTodo
	if err := uc.generate(ctx, operationGenerateTodo, spec, &raw); err != nil {
		uc.l.Errorf(ctx, "%s: generate for %q failed (kind=%s): %v",
			LogPrefixGenerateTodo, preview(text), gemini.KindOf(err), err)
		metrics.IncrementTodoGeneration(outcomeOf(err))
		return ai.GenerateTodoOutput{}, err
	}

	generated := repairTodo(raw, refs.Today, uc.calendar)
	metrics.IncrementTodoGeneration(outcomeSuccess)
	uc.l.Infof(ctx, "%s: generated %q (priority=%s)", LogPrefixGenerateTodo, preview(generated.Title), generated.Priority)

	return ai.GenerateTodoOutput{Todo: generated}, nil
}
