package usecase

// Log prefixes
const (
	LogPrefixGenerateTodo = "internal.ai.usecase.GenerateTodo"
	LogPrefixAnalyzeTodos = "internal.ai.usecase.AnalyzeTodos"
)

// Prompt limits
const (
	minPromptLength = 2
	maxPromptLength = 500

	logPreviewLength = 50
)

// Repair limits and fallbacks
const (
	maxTitleLength    = 100
	truncatedTitleLen = 97
	titleEllipsis     = "..."
	minTitleLength    = 2
	fallbackTitle     = "할 일"
	fallbackDueTime   = "09:00"
	defaultTimeOfDay  = "09:00"
)

// Aggregation limits
const (
	priorityDisplayCap = 3
	dueSoonDays        = 7

	morningStartHour   = 6
	afternoonStartHour = 12
	eveningStartHour   = 18
)

// Analysis output limits
const (
	maxUrgentTasks     = 5
	maxInsightItems    = 7
	maxRecommendations = 7
	fallbackSummary    = "할 일 현황을 분석했습니다."
)

// Metric labels
const (
	operationGenerateTodo = "generate_todo"
	operationAnalyzeTodos = "analyze_todos"
	outcomeSuccess        = "success"
	outcomeError          = "error"
	outcomeInvalidInput   = "invalid_input"
	sourceModel           = "model"
	sourceCanned          = "canned"
)
