package usecase

import (
	"time"

	"smart-todo/internal/ai"
	"smart-todo/pkg/datemath"
	pkgLog "smart-todo/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	llm      ai.Generator
	calendar *datemath.Calendar
	now      func() time.Time
}

var _ ai.UseCase = (*implUseCase)(nil)

// New creates a new ai UseCase instance. A nil now uses time.Now.
func New(l pkgLog.Logger, llm ai.Generator, calendar *datemath.Calendar, now func() time.Time) *implUseCase {
	if now == nil {
		now = time.Now
	}
	if calendar == nil {
		calendar = datemath.New(nil)
	}
	return &implUseCase{
		l:        l,
		llm:      llm,
		calendar: calendar,
		now:      now,
	}
}
