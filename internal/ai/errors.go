package ai

import "errors"

// Input errors. They are detected before any generation call.
var (
	ErrPromptMissing      = errors.New("prompt is missing")
	ErrPromptTooShort     = errors.New("prompt is too short")
	ErrPromptTooLong      = errors.New("prompt is too long")
	ErrPromptInvalidChars = errors.New("prompt has no valid characters")
	ErrInvalidPeriod      = errors.New("invalid analysis period")
)
