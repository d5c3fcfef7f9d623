package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	aiHTTP "smart-todo/internal/ai/delivery/http"
	aiUC "smart-todo/internal/ai/usecase"
)

// setupAIDomain initializes the ai domain and registers its routes under /api/ai.
func (srv HTTPServer) setupAIDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. UseCase
	uc := aiUC.New(srv.l, srv.generator, srv.calendar, nil)

	// 2. HTTP Handler
	h := aiHTTP.New(srv.l, uc, srv.calendar.Location())

	// 3. Routes: registers /api/ai/generate-todo and /api/ai/analyze-todos
	aiHTTP.RegisterRoutes(api.Group("/ai"), h, srv.mw.RateLimit())

	srv.l.Infof(ctx, "AI domain registered")
	return nil
}
