package usecase

import (
	"context"

	"smart-todo/internal/ai"
	"smart-todo/pkg/gemini"
	"smart-todo/pkg/metrics"
)

// AnalyzeTodos aggregates the todos of the period and asks the model for an analysis.
// An empty period returns a fixed analysis without calling the model.
func (uc *implUseCase) AnalyzeTodos(ctx context.Context, input ai.AnalyzeTodosInput) (ai.AnalyzeTodosOutput, error) {
	if !input.Period.Valid() {
		return ai.AnalyzeTodosOutput{}, ai.ErrInvalidPeriod
	}

	now := uc.now()
	st := aggregate(uc.calendar, input.Todos, input.Period, now)
	if st.Total == 0 {
		metrics.IncrementTodoAnalysis(string(input.Period), sourceCanned)
		return ai.AnalyzeTodosOutput{Analysis: cannedAnalysis(input.Period)}, nil
	}

	spec := buildAnalysisPrompt(st, uc.calendar.Resolve(now), uc.calendar)

	var analysis ai.TodoAnalysis
	if err := uc.generate(ctx, operationAnalyzeTodos, spec, &analysis); err != nil {
		uc.l.Errorf(ctx, "%s: generate for %d todos (period=%s) failed (kind=%s): %v",
			LogPrefixAnalyzeTodos, st.Total, input.Period, gemini.KindOf(err), err)
		return ai.AnalyzeTodosOutput{}, err
	}

	metrics.IncrementTodoAnalysis(string(input.Period), sourceModel)
	return ai.AnalyzeTodosOutput{Analysis: cleanAnalysis(analysis)}, nil
}
