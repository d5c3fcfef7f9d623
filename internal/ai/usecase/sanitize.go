package usecase

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"smart-todo/internal/ai"
)

var (
	validCharRe      = regexp.MustCompile(`[가-힣a-zA-Z0-9]`)
	inlineSpaceRunRe = regexp.MustCompile(`[^\S\n]+`)
	newlineRunRe     = regexp.MustCompile(`\n+`)
)

// validatePrompt checks the raw prompt. The first failing rule wins.
func validatePrompt(text string) error {
	if text == "" {
		return ai.ErrPromptMissing
	}
	trimmed := strings.TrimSpace(text)
	if utf8.RuneCountInString(trimmed) < minPromptLength {
		return ai.ErrPromptTooShort
	}
	if utf8.RuneCountInString(text) > maxPromptLength {
		return ai.ErrPromptTooLong
	}
	if !validCharRe.MatchString(trimmed) {
		return ai.ErrPromptInvalidChars
	}
	return nil
}

// normalizePrompt trims and collapses whitespace runs. Newline runs become one newline.
func normalizePrompt(text string) string {
	text = strings.TrimSpace(text)
	text = inlineSpaceRunRe.ReplaceAllString(text, " ")
	return newlineRunRe.ReplaceAllString(text, "\n")
}
