package http

import (
	"time"

	"smart-todo/internal/ai"
	"smart-todo/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler is the public interface for the ai HTTP delivery layer.
type Handler interface {
	GenerateTodo(c *gin.Context)
	AnalyzeTodos(c *gin.Context)
}

type handler struct {
	l   log.Logger
	uc  ai.UseCase
	loc *time.Location // zone for timestamps sent without an offset
}

// New creates a new HTTP handler for the ai domain.
func New(l log.Logger, uc ai.UseCase, loc *time.Location) *handler {
	if loc == nil {
		loc = time.UTC
	}
	return &handler{
		l:   l,
		uc:  uc,
		loc: loc,
	}
}
