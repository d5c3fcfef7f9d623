package usecase

import (
	"fmt"
	"strings"
	"time"

	"smart-todo/internal/ai"
	"smart-todo/internal/todo"
	"smart-todo/pkg/datemath"
	"smart-todo/pkg/gemini"
)

// todoSchema is the output schema of the extraction call.
var todoSchema = &gemini.Schema{
	Type: gemini.TypeObject,
	Properties: map[string]*gemini.Schema{
		"title": {
			Type:        gemini.TypeString,
			Description: "할 일 제목 (간결하게, 100자 이내)",
		},
		"description": {
			Type:        gemini.TypeString,
			Description: "추가 설명 (없으면 생략)",
			Nullable:    true,
		},
		"due_date": {
			Type:        gemini.TypeString,
			Description: "마감 날짜 YYYY-MM-DD (날짜 언급이 없으면 생략)",
			Nullable:    true,
		},
		"due_time": {
			Type:        gemini.TypeString,
			Description: "마감 시간 HH:mm 24시간제",
			Nullable:    true,
		},
		"priority": {
			Type: gemini.TypeString,
			Enum: []string{string(todo.PriorityLow), string(todo.PriorityMedium), string(todo.PriorityHigh)},
		},
		"category": {
			Type:  gemini.TypeArray,
			Items: &gemini.Schema{Type: gemini.TypeString, Enum: todo.GeneratedCategories},
		},
	},
	Required:         []string{"title", "priority", "category"},
	PropertyOrdering: []string{"title", "description", "due_date", "due_time", "priority", "category"},
}

// buildTodoPrompt renders the extraction instruction for an already-normalized text.
func buildTodoPrompt(text string, refs datemath.References) ai.PromptSpec {
	date := func(t time.Time) string { return t.Format(datemath.DateFormat) }

	var sb strings.Builder
	sb.WriteString("당신은 사용자의 자연어 문장을 구조화된 할 일(todo) 데이터로 변환하는 도우미입니다.\n\n")

	sb.WriteString("## 현재 시간 정보 (UTC+9)\n")
	sb.WriteString(fmt.Sprintf("- 현재 시각: %s (%s)\n", refs.Now.Format("2006-01-02 15:04"), refs.Weekday))
	sb.WriteString(fmt.Sprintf("- 오늘: %s\n", date(refs.Today)))
	sb.WriteString(fmt.Sprintf("- 내일: %s\n", date(refs.Tomorrow)))
	sb.WriteString(fmt.Sprintf("- 모레: %s\n", date(refs.DayAfterTomorrow)))
	sb.WriteString(fmt.Sprintf("- 이번 주 금요일: %s\n", date(refs.ThisFriday)))
	sb.WriteString(fmt.Sprintf("- 다음 주 월요일: %s\n\n", date(refs.NextMonday)))

	sb.WriteString("## 변환 규칙\n")
	sb.WriteString("1. 날짜\n")
	sb.WriteString(fmt.Sprintf("   - \"오늘\" → %s, \"내일\" → %s, \"모레\" → %s\n",
		date(refs.Today), date(refs.Tomorrow), date(refs.DayAfterTomorrow)))
	sb.WriteString(fmt.Sprintf("   - \"이번 주 금요일\" → %s, \"다음 주 월요일\" → %s\n",
		date(refs.ThisFriday), date(refs.NextMonday)))
	sb.WriteString("   - 날짜 언급이 없으면 due_date를 생략합니다.\n")
	sb.WriteString("   - 과거 날짜는 사용하지 않습니다.\n")
	sb.WriteString("2. 시간 (HH:mm, 24시간제)\n")
	sb.WriteString("   - 아침 → 09:00, 점심 → 12:00, 오후 → 14:00, 저녁 → 18:00, 밤 → 21:00\n")
	sb.WriteString("   - \"오후 3시\"처럼 구체적인 시각은 24시간제로 변환합니다 (예: 15:00).\n")
	sb.WriteString(fmt.Sprintf("   - 시간 언급이 없으면 %s을 사용합니다.\n", defaultTimeOfDay))
	sb.WriteString("3. 우선순위 (priority)\n")
	sb.WriteString("   - \"급하게\", \"중요한\", \"빨리\", \"반드시\", \"긴급\" → high\n")
	sb.WriteString("   - \"여유롭게\", \"천천히\", \"언젠가\", \"시간 나면\" → low\n")
	sb.WriteString("   - 그 외 → medium\n")
	sb.WriteString("4. 카테고리 (category, 하나 이상)\n")
	sb.WriteString("   - 회의, 보고서, 프로젝트, 업무, 미팅 → 업무\n")
	sb.WriteString("   - 운동, 병원, 건강, 요가, 식단 → 건강\n")
	sb.WriteString("   - 공부, 강의, 독서, 학습, 시험 → 학습\n")
	sb.WriteString("   - 쇼핑, 약속, 가족, 친구, 개인 → 개인\n")
	sb.WriteString(fmt.Sprintf("   - 해당 키워드가 없으면 [\"%s\"]\n", todo.DefaultCategory))
	sb.WriteString("5. 제목(title)은 핵심 행동을 간결하게 작성하고, 부가 정보는 description에 넣습니다.\n\n")

	sb.WriteString("## 사용자 입력\n")
	sb.WriteString(text)
	sb.WriteString("\n")

	return ai.PromptSpec{
		Instruction: sb.String(),
		Schema:      todoSchema,
	}
}
