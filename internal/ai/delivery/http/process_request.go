package http

import (
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// processGenerateTodoReq binds the generate request body. A body that is not
// a JSON object is treated as a missing prompt.
func (h *handler) processGenerateTodoReq(c *gin.Context) (generateTodoReq, error) {
	var req generateTodoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return generateTodoReq{}, errPromptMissing
	}
	return req, nil
}

// processAnalyzeTodosReq binds and validates the analyze request body.
func (h *handler) processAnalyzeTodosReq(c *gin.Context) (analyzeTodosReq, error) {
	var req analyzeTodosReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, h.bindError(err)
	}
	return req, nil
}

// bindError picks the client message for an analyze bind failure.
func (h *handler) bindError(err error) error {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		for _, fe := range vErrs {
			if fe.Field() == "Todos" {
				return errInvalidTodos
			}
		}
		return errInvalidPeriod
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field == "period" {
		return errInvalidPeriod
	}
	return errInvalidTodos
}
