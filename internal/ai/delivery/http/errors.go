package http

import (
	"errors"
	"net/http"

	"smart-todo/internal/ai"
	pkgErrors "smart-todo/pkg/errors"
	"smart-todo/pkg/gemini"
)

// Delivery-level request errors.
var (
	errInvalidTodos  = pkgErrors.NewHTTPError(http.StatusBadRequest, "할 일 목록(todos)은 배열이어야 합니다.")
	errInvalidPeriod = pkgErrors.NewHTTPError(http.StatusBadRequest, "분석 기간(period)은 today 또는 week 중 하나여야 합니다.")
)

var (
	errPromptMissing      = pkgErrors.NewHTTPError(http.StatusBadRequest, "유효한 할 일 내용을 입력해주세요.")
	errPromptTooShort     = pkgErrors.NewHTTPError(http.StatusBadRequest, "할 일 내용이 너무 짧습니다. 최소 2자 이상 입력해주세요.")
	errPromptTooLong      = pkgErrors.NewHTTPError(http.StatusBadRequest, "할 일 내용이 너무 깁니다. 최대 500자까지 입력 가능합니다.")
	errPromptInvalidChars = pkgErrors.NewHTTPError(http.StatusBadRequest, "올바른 문자를 포함해주세요.")

	errAIAuth          = pkgErrors.NewHTTPError(http.StatusUnauthorized, "AI 서비스 인증에 실패했습니다. 관리자에게 문의해주세요.")
	errAIQuota         = pkgErrors.NewHTTPError(http.StatusTooManyRequests, "AI 서비스 요청 한도를 초과했습니다. 잠시 후 다시 시도해주세요.")
	errAITimeout       = pkgErrors.NewHTTPError(http.StatusGatewayTimeout, "AI 응답 시간이 초과되었습니다. 다시 시도해주세요.")
	errAINetwork       = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "AI 서비스에 연결할 수 없습니다. 잠시 후 다시 시도해주세요.")
	errAIModel         = pkgErrors.NewHTTPError(http.StatusInternalServerError, "AI 응답을 처리하지 못했습니다. 다시 시도해주세요.")
	errAINotConfigured = pkgErrors.NewHTTPError(http.StatusInternalServerError, "AI 서비스가 설정되지 않았습니다. 관리자에게 문의해주세요.")
)

// mapError translates use-case and gateway errors into HTTP errors from pkg/errors.
// Unknown errors become a generic 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, ai.ErrPromptMissing):
		return errPromptMissing
	case errors.Is(err, ai.ErrPromptTooShort):
		return errPromptTooShort
	case errors.Is(err, ai.ErrPromptTooLong):
		return errPromptTooLong
	case errors.Is(err, ai.ErrPromptInvalidChars):
		return errPromptInvalidChars
	case errors.Is(err, ai.ErrInvalidPeriod):
		return errInvalidPeriod
	case errors.Is(err, gemini.ErrMissingAPIKey):
		return errAINotConfigured
	}

	switch gemini.KindOf(err) {
	case gemini.KindAuth:
		return errAIAuth
	case gemini.KindQuota:
		return errAIQuota
	case gemini.KindTimeout:
		return errAITimeout
	case gemini.KindNetwork:
		return errAINetwork
	case gemini.KindModel, gemini.KindMalformedRequest:
		return errAIModel
	}

	return pkgErrors.ErrInternalServerError
}
