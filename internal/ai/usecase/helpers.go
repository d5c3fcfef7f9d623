package usecase

import (
	"context"
	"math"
	"time"
	"unicode/utf8"

	"smart-todo/internal/ai"
	"smart-todo/pkg/gemini"
	"smart-todo/pkg/metrics"
)

// preview shortens s for log lines.
func preview(s string) string {
	if utf8.RuneCountInString(s) <= logPreviewLength {
		return s
	}
	return string([]rune(s)[:logPreviewLength]) + "..."
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// generate runs one generation call and records its latency by outcome.
func (uc *implUseCase) generate(ctx context.Context, operation string, spec ai.PromptSpec, out any) error {
	start := time.Now()
	err := uc.llm.GenerateJSON(ctx, spec.Instruction, spec.Schema, out)
	metrics.RecordLLMCallLatency(operation, outcomeOf(err), time.Since(start))
	return err
}

// outcomeOf labels err for metrics.
func outcomeOf(err error) string {
	if err == nil {
		return outcomeSuccess
	}
	if kind := gemini.KindOf(err); kind != "" {
		return string(kind)
	}
	return outcomeError
}
