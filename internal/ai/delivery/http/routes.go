package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the ai endpoints onto rg.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mws ...gin.HandlerFunc) {
	ai := rg.Group("", mws...)
	{
		ai.POST("/generate-todo", h.GenerateTodo)
		ai.POST("/analyze-todos", h.AnalyzeTodos)
	}
}
