package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo/pkg/response"
)

// GenerateTodo godoc
// @Summary     Generate a todo from text
// @Description Converts a Korean or English sentence into a structured todo. Nothing is stored.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body generateTodoReq true "Free-text prompt (2-500 characters)"
// @Success     200  {object} response.Resp{data=generatedTodoResp}
// @Failure     400  {object} response.Resp "Invalid prompt"
// @Failure     401  {object} response.Resp "AI authentication failed"
// @Failure     429  {object} response.Resp "Rate or quota limit exceeded"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Failure     503  {object} response.Resp "AI service unreachable"
// @Failure     504  {object} response.Resp "AI timeout"
// @Router      /api/ai/generate-todo [POST]
func (h *handler) GenerateTodo(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateTodoReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.GenerateTodo(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "ai.http.GenerateTodo: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newGenerateTodoResp(output))
}

// AnalyzeTodos godoc
// @Summary     Analyze todos
// @Description Summarizes the todos created or due in the selected period with insights and recommendations.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body analyzeTodosReq true "Todo list and period (today or week)"
// @Success     200  {object} response.Resp{data=analysisResp}
// @Failure     400  {object} response.Resp "Invalid todos or period"
// @Failure     401  {object} response.Resp "AI authentication failed"
// @Failure     429  {object} response.Resp "Rate or quota limit exceeded"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Failure     503  {object} response.Resp "AI service unreachable"
// @Failure     504  {object} response.Resp "AI timeout"
// @Router      /api/ai/analyze-todos [POST]
func (h *handler) AnalyzeTodos(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeTodosReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.AnalyzeTodos(ctx, req.toInput(h.loc))
	if err != nil {
		h.l.Errorf(ctx, "ai.http.AnalyzeTodos: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAnalysisResp(output))
}
