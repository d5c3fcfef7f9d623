package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"smart-todo/internal/ai"
	aiHTTP "smart-todo/internal/ai/delivery/http"
	"smart-todo/internal/todo"
	"smart-todo/pkg/datemath"
	"smart-todo/pkg/gemini"
	pkgLog "smart-todo/pkg/log"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockUseCase struct {
	generateOut ai.GenerateTodoOutput
	generateErr error
	analyzeOut  ai.AnalyzeTodosOutput
	analyzeErr  error

	generateIn ai.GenerateTodoInput
	analyzeIn  ai.AnalyzeTodosInput
	calls      int
}

func (m *mockUseCase) GenerateTodo(ctx context.Context, input ai.GenerateTodoInput) (ai.GenerateTodoOutput, error) {
	m.calls++
	m.generateIn = input
	return m.generateOut, m.generateErr
}

func (m *mockUseCase) AnalyzeTodos(ctx context.Context, input ai.AnalyzeTodosInput) (ai.AnalyzeTodosOutput, error) {
	m.calls++
	m.analyzeIn = input
	return m.analyzeOut, m.analyzeErr
}

// ── Test Helpers ───────────────────────────────────────────────────────────

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newEngine(uc ai.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := aiHTTP.New(pkgLog.NewNop(), uc, datemath.FixedZone(9))
	aiHTTP.RegisterRoutes(r.Group("/api/ai"), h)
	return r
}

func post(t *testing.T, r *gin.Engine, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not JSON: %v (%s)", err, w.Body.String())
	}
	return w, env
}

func strPtr(s string) *string { return &s }

// ── Tests ──────────────────────────────────────────────────────────────────

func TestGenerateTodo_OK(t *testing.T) {
	muc := &mockUseCase{generateOut: ai.GenerateTodoOutput{Todo: ai.GeneratedTodo{
		Title:    "회의 준비",
		DueDate:  strPtr("2026-01-05"),
		DueTime:  strPtr("14:00"),
		Priority: todo.PriorityHigh,
		Category: []string{"업무"},
	}}}
	r := newEngine(muc)

	w, env := post(t, r, "/api/ai/generate-todo", `{"prompt":"내일 오후 회의 준비"}`)

	if w.Code != http.StatusOK || !env.Success {
		t.Fatalf("status = %d, success = %v", w.Code, env.Success)
	}
	if muc.generateIn.Prompt != "내일 오후 회의 준비" {
		t.Errorf("prompt = %q", muc.generateIn.Prompt)
	}

	var got map[string]any
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatal(err)
	}
	if got["title"] != "회의 준비" || got["due_date"] != "2026-01-05" || got["priority"] != "high" {
		t.Errorf("data = %v", got)
	}
	if _, ok := got["description"]; ok {
		t.Errorf("absent description should be omitted, got %v", got["description"])
	}
}

func TestGenerateTodo_NonStringPrompt(t *testing.T) {
	muc := &mockUseCase{generateErr: ai.ErrPromptMissing}
	r := newEngine(muc)

	for _, body := range []string{`{"prompt": 42}`, `{}`, `not json`} {
		w, env := post(t, r, "/api/ai/generate-todo", body)
		if w.Code != http.StatusBadRequest || env.Success || env.Error == "" {
			t.Errorf("body %s: status = %d, env = %+v", body, w.Code, env)
		}
	}
}

func TestGenerateTodo_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "too short", err: ai.ErrPromptTooShort, want: http.StatusBadRequest},
		{name: "too long", err: ai.ErrPromptTooLong, want: http.StatusBadRequest},
		{name: "invalid chars", err: ai.ErrPromptInvalidChars, want: http.StatusBadRequest},
		{name: "auth", err: &gemini.Error{Kind: gemini.KindAuth, StatusCode: 403}, want: http.StatusUnauthorized},
		{name: "quota", err: &gemini.Error{Kind: gemini.KindQuota, StatusCode: 429}, want: http.StatusTooManyRequests},
		{name: "timeout", err: &gemini.Error{Kind: gemini.KindTimeout}, want: http.StatusGatewayTimeout},
		{name: "network", err: &gemini.Error{Kind: gemini.KindNetwork}, want: http.StatusServiceUnavailable},
		{name: "model", err: &gemini.Error{Kind: gemini.KindModel, StatusCode: 500}, want: http.StatusInternalServerError},
		{name: "malformed", err: &gemini.Error{Kind: gemini.KindMalformedRequest, StatusCode: 400}, want: http.StatusInternalServerError},
		{name: "missing key", err: gemini.ErrMissingAPIKey, want: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("boom: secret upstream body"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newEngine(&mockUseCase{generateErr: tt.err})

			w, env := post(t, r, "/api/ai/generate-todo", `{"prompt":"운동하기"}`)

			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
			if env.Success || env.Error == "" {
				t.Errorf("env = %+v, want failure with message", env)
			}
			if bytes.Contains(w.Body.Bytes(), []byte("secret upstream body")) {
				t.Errorf("raw error leaked to client: %s", w.Body.String())
			}
		})
	}
}

func TestAnalyzeTodos_OK(t *testing.T) {
	muc := &mockUseCase{analyzeOut: ai.AnalyzeTodosOutput{Analysis: ai.TodoAnalysis{Summary: "좋아요"}}}
	r := newEngine(muc)

	body := `{
		"period": "week",
		"todos": [
			{"id": 7, "title": "보고서", "priority": "HIGH", "category": ["업무"], "completed": false,
			 "created_date": "2026-01-06T09:00:00+09:00", "due_date": "2026-01-07T01:00:00Z"},
			{"id": "b", "title": "산책", "priority": "low", "category": [], "completed": true,
			 "created_date": "2026-01-06 10:00:00", "due_date": "garbage"}
		]
	}`
	w, env := post(t, r, "/api/ai/analyze-todos", body)

	if w.Code != http.StatusOK || !env.Success {
		t.Fatalf("status = %d, env = %+v", w.Code, env)
	}

	in := muc.analyzeIn
	if in.Period != ai.PeriodWeek || len(in.Todos) != 2 {
		t.Fatalf("input = %+v", in)
	}
	first, second := in.Todos[0], in.Todos[1]
	if first.ID != "7" || first.Priority != todo.PriorityHigh || first.DueDate == nil {
		t.Errorf("first = %+v", first)
	}
	if !first.DueDate.Equal(time.Date(2026, 1, 7, 1, 0, 0, 0, time.UTC)) {
		t.Errorf("first due = %v", first.DueDate)
	}
	if second.DueDate != nil {
		t.Errorf("unparseable due date should be absent, got %v", second.DueDate)
	}
	wantCreated := time.Date(2026, 1, 6, 10, 0, 0, 0, datemath.FixedZone(9))
	if !second.CreatedDate.Equal(wantCreated) {
		t.Errorf("zone-less created date = %v, want %v", second.CreatedDate, wantCreated)
	}

	var got map[string]any
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatal(err)
	}
	if arr, ok := got["urgentTasks"].([]any); !ok || len(arr) != 0 {
		t.Errorf("urgentTasks = %v, want empty array", got["urgentTasks"])
	}
}

func TestAnalyzeTodos_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "todos not array", body: `{"todos": "x", "period": "today"}`},
		{name: "todos missing", body: `{"period": "today"}`},
		{name: "todos null", body: `{"todos": null, "period": "today"}`},
		{name: "period invalid", body: `{"todos": [], "period": "month"}`},
		{name: "period missing", body: `{"todos": []}`},
		{name: "period not string", body: `{"todos": [], "period": 1}`},
		{name: "empty body", body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			muc := &mockUseCase{}
			r := newEngine(muc)

			w, env := post(t, r, "/api/ai/analyze-todos", tt.body)

			if w.Code != http.StatusBadRequest || env.Success || env.Error == "" {
				t.Errorf("status = %d, env = %+v", w.Code, env)
			}
			if muc.calls != 0 {
				t.Errorf("use case called %d times", muc.calls)
			}
		})
	}
}

func TestAnalyzeTodos_GatewayError(t *testing.T) {
	r := newEngine(&mockUseCase{analyzeErr: &gemini.Error{Kind: gemini.KindQuota}})

	w, _ := post(t, r, "/api/ai/analyze-todos", `{"todos": [], "period": "today"}`)
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", w.Code)
	}
}
