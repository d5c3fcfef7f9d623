package usecase

import (
	"fmt"
	"sort"
	"strings"

	"smart-todo/internal/ai"
	"smart-todo/internal/todo"
	"smart-todo/pkg/datemath"
	"smart-todo/pkg/gemini"
)

const maxListedTodos = 30

var analysisSchema = &gemini.Schema{
	Type: gemini.TypeObject,
	Properties: map[string]*gemini.Schema{
		"summary": {
			Type:        gemini.TypeString,
			Description: "전체 현황 요약 (2~3문장)",
		},
		"urgentTasks": {
			Type:        gemini.TypeArray,
			Description: "지금 바로 처리해야 할 할 일 제목",
			Items:       &gemini.Schema{Type: gemini.TypeString},
			MaxItems:    maxUrgentTasks,
		},
		"insights": {
			Type:  gemini.TypeArray,
			Items: &gemini.Schema{Type: gemini.TypeString},
		},
		"recommendations": {
			Type:  gemini.TypeArray,
			Items: &gemini.Schema{Type: gemini.TypeString},
		},
	},
	Required:         []string{"summary", "urgentTasks", "insights", "recommendations"},
	PropertyOrdering: []string{"summary", "urgentTasks", "insights", "recommendations"},
}

var priorityLabels = map[todo.Priority]string{
	todo.PriorityHigh:   "높음",
	todo.PriorityMedium: "보통",
	todo.PriorityLow:    "낮음",
}

// buildAnalysisPrompt renders the analysis instruction for the in-window statistics.
func buildAnalysisPrompt(st todoStatistics, refs datemath.References, cal *datemath.Calendar) ai.PromptSpec {
	var sb strings.Builder

	sb.WriteString("당신은 사용자의 할 일 목록을 분석하고 따뜻하게 격려하는 생산성 코치입니다.\n\n")
	sb.WriteString(fmt.Sprintf("## 기준 시각\n%s (%s)\n\n", refs.Now.Format("2006-01-02 15:04"), refs.Weekday))

	writeStatistics(&sb, st)
	writeTodoList(&sb, st, cal)

	if st.Period == ai.PeriodWeek {
		writeWeekRules(&sb)
	} else {
		writeTodayRules(&sb, refs)
	}

	sb.WriteString("\n## 공통 규칙\n")
	sb.WriteString("- 이모지를 절대 사용하지 마세요.\n")
	sb.WriteString("- 존댓말로, 긍정적이고 격려하는 어조로 작성하세요.\n")
	sb.WriteString("- 비난하거나 죄책감을 주는 표현은 피하세요.\n")
	sb.WriteString(fmt.Sprintf("- urgentTasks에는 마감이 지났거나 오늘 마감인 미완료 할 일의 제목을 최대 %d개까지 넣으세요. 없으면 빈 배열입니다.\n", maxUrgentTasks))

	return ai.PromptSpec{
		Instruction: sb.String(),
		Schema:      analysisSchema,
	}
}

func writeStatistics(sb *strings.Builder, st todoStatistics) {
	sb.WriteString("## 통계\n")
	sb.WriteString(fmt.Sprintf("- 전체: %d개, 완료: %d개, 미완료: %d개, 완료율: %.1f%%\n",
		st.Total, st.Completed, st.Incomplete, st.CompletionRate))
	sb.WriteString(fmt.Sprintf("- 마감 지남: %d개, 오늘 마감: %d개, 7일 이내 마감: %d개\n",
		st.Overdue, st.DueToday, st.DueThisWeek))

	sb.WriteString("- 우선순위별:")
	for _, p := range todo.Priorities {
		ps := st.ByPriority[p]
		sb.WriteString(fmt.Sprintf(" %s %d개(완료 %d, %.1f%%)", priorityLabels[p], ps.Count, ps.Completed, ps.Rate))
	}
	sb.WriteString("\n")

	if len(st.ByCategory) > 0 {
		names := make([]string, 0, len(st.ByCategory))
		for name := range st.ByCategory {
			names = append(names, name)
		}
		sort.Strings(names)
		sb.WriteString("- 카테고리별:")
		for _, name := range names {
			cs := st.ByCategory[name]
			sb.WriteString(fmt.Sprintf(" %s %d개(완료 %d)", name, cs.Count, cs.Completed))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("- 요일별 생성:")
	for i, n := range st.CreatedByWeekday {
		sb.WriteString(fmt.Sprintf(" %s %d", datemath.WeekdayNames[i], n))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("- 마감 시간대: 오전 %d개, 오후 %d개, 저녁 %d개\n\n",
		st.DueHours.Morning, st.DueHours.Afternoon, st.DueHours.Evening))

	sb.WriteString("## 남은 할 일 (우선순위별)\n")
	for _, p := range todo.Priorities {
		b := st.Pending[p]
		titles := make([]string, 0, len(b.Shown))
		for _, t := range b.Shown {
			titles = append(titles, t.Title)
		}
		line := strings.Join(titles, ", ")
		if line == "" {
			line = "없음"
		}
		if b.Overflow > 0 {
			line += fmt.Sprintf(" 외 %d개", b.Overflow)
		}
		sb.WriteString(fmt.Sprintf("- %s: %s\n", priorityLabels[p], line))
	}
	sb.WriteString("\n")
}

func writeTodoList(sb *strings.Builder, st todoStatistics, cal *datemath.Calendar) {
	sb.WriteString("## 할 일 목록\n")
	listed := todo.SortForReview(st.Window)
	if len(listed) > maxListedTodos {
		listed = listed[:maxListedTodos]
	}
	for _, t := range listed {
		status := "미완료"
		if t.Completed {
			status = "완료"
		}
		due := "마감 없음"
		if t.DueDate != nil {
			due = "마감 " + t.DueDate.In(cal.Location()).Format("2006-01-02 15:04")
		}
		sb.WriteString(fmt.Sprintf("- [%s] %s (우선순위 %s, %s", status, t.Title, priorityLabelOf(t.Priority), due))
		if len(t.Category) > 0 {
			sb.WriteString(", " + strings.Join(t.Category, "/"))
		}
		sb.WriteString(")\n")
	}
	if more := len(st.Window) - len(listed); more > 0 {
		sb.WriteString(fmt.Sprintf("- 외 %d개\n", more))
	}
}

func writeTodayRules(sb *strings.Builder, refs datemath.References) {
	hour := refs.Now.Hour()
	sb.WriteString("\n## 오늘 분석 규칙\n")
	sb.WriteString(fmt.Sprintf("- summary: 현재 %s이며 오늘이 약 %d시간 남았다는 점을 반영해 남은 하루를 어떻게 보낼지 안내하세요.\n",
		timeOfDayLabel(hour), 24-hour))
	sb.WriteString("- insights: 4~6개.\n")
	sb.WriteString("  1. 처음 1~2개는 무조건 긍정적인 내용 (이미 해낸 일, 좋은 시도)\n")
	sb.WriteString("  2. 다음 2~3개는 오늘의 패턴 관찰 (시간대, 카테고리, 우선순위 분포)\n")
	sb.WriteString("  3. 마감 지난 일이나 미완료 높은 우선순위 일이 있을 때만 0~2개의 주의 사항\n")
	sb.WriteString("- recommendations: 4~6개. 우선순위에 따른 처리 순서, 남은 시간대별 실행 팁, 동기 부여를 포함하고, 일이 몰려 있다면 업무량 조절 제안도 넣으세요.\n")
}

func writeWeekRules(sb *strings.Builder) {
	sb.WriteString("\n## 이번 주 분석 규칙\n")
	sb.WriteString("- summary: 이번 주 전체에 대한 평가와 다음 주를 위한 한마디를 담으세요.\n")
	sb.WriteString("- insights: 5~7개.\n")
	sb.WriteString("  1. 반드시 2개의 긍정적인 내용 (강점, 성과)\n")
	sb.WriteString("  2. 2~3개의 패턴 분석 (요일, 카테고리, 시간대)\n")
	sb.WriteString("  3. 1~2개의 마감 관리 관찰\n")
	sb.WriteString("  4. 1개의 개선 포인트 (격려하는 표현으로)\n")
	sb.WriteString("- recommendations: 5~7개. 다음 주 계획, 생산성 팁, 우선순위와 균형, 습관 만들기, 마음가짐을 고루 다루세요.\n")
}

func timeOfDayLabel(hour int) string {
	switch {
	case hour < morningStartHour:
		return "새벽"
	case hour < afternoonStartHour:
		return "오전"
	case hour < eveningStartHour:
		return "오후"
	default:
		return "저녁"
	}
}

func priorityLabelOf(p todo.Priority) string {
	if label, ok := priorityLabels[p]; ok {
		return label
	}
	return string(p)
}

// cannedAnalysis is returned without a model call when the period has no todos.
func cannedAnalysis(period ai.Period) ai.TodoAnalysis {
	summary := "오늘 등록된 할 일이 없습니다. 새로운 할 일을 추가해 하루를 계획해 보세요."
	if period == ai.PeriodWeek {
		summary = "이번 주에 등록된 할 일이 없습니다. 할 일을 추가해 한 주를 계획해 보세요."
	}
	return ai.TodoAnalysis{
		Summary:     summary,
		UrgentTasks: []string{},
		Insights: []string{
			"새로운 시작을 준비하기 좋은 때입니다.",
			"작은 할 일 하나부터 기록해 보세요.",
		},
		Recommendations: []string{
			"오늘 꼭 하고 싶은 일 한 가지를 할 일로 추가해 보세요.",
			"할 일에 마감 날짜와 우선순위를 함께 정해 두면 계획이 쉬워집니다.",
		},
	}
}

// cleanAnalysis trims items, drops blanks and caps list lengths.
func cleanAnalysis(a ai.TodoAnalysis) ai.TodoAnalysis {
	summary := strings.TrimSpace(a.Summary)
	if summary == "" {
		summary = fallbackSummary
	}
	return ai.TodoAnalysis{
		Summary:         summary,
		UrgentTasks:     cleanItems(a.UrgentTasks, maxUrgentTasks),
		Insights:        cleanItems(a.Insights, maxInsightItems),
		Recommendations: cleanItems(a.Recommendations, maxRecommendations),
	}
}

func cleanItems(items []string, limit int) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
		if len(out) == limit {
			break
		}
	}
	return out
}
