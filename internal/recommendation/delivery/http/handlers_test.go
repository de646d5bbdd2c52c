package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"scheduling-intelligence/internal/middleware"
	"scheduling-intelligence/internal/model"
	"scheduling-intelligence/internal/recommendation"
	"scheduling-intelligence/internal/task"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockUseCase struct {
	out      recommendation.RecommendOutput
	err      error
	gotInput recommendation.RecommendInput
}

func (m *mockUseCase) Recommend(ctx context.Context, sc model.Scope, in recommendation.RecommendInput) (recommendation.RecommendOutput, error) {
	m.gotInput = in
	return m.out, m.err
}

type mockTasks struct {
	out      task.ApplyOutput
	err      error
	gotInput task.ApplyInput
	gotScope model.Scope
}

func (m *mockTasks) Agenda(ctx context.Context, sc model.Scope, in task.AgendaInput) (task.AgendaOutput, error) {
	return task.AgendaOutput{}, nil
}

func (m *mockTasks) Week(ctx context.Context, sc model.Scope, in task.WeekInput) (task.WeekOutput, error) {
	return task.WeekOutput{}, nil
}

func (m *mockTasks) Invalidate(ctx context.Context, sc model.Scope, in task.InvalidateInput) error {
	return nil
}

func (m *mockTasks) ApplyRecommendation(ctx context.Context, sc model.Scope, in task.ApplyInput) (task.ApplyOutput, error) {
	m.gotScope, m.gotInput = sc, in
	return m.out, m.err
}

func newRouter(uc recommendation.UseCase, tasks task.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	l := &mockLogger{}
	RegisterRoutes(r.Group("/api/v1"), New(l, uc, tasks, 14), middleware.New(l, ""))
	return r
}

func do(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Owner-ID", "owner-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestList(t *testing.T) {
	t.Run("Returns recommendations", func(t *testing.T) {
		uc := &mockUseCase{out: recommendation.RecommendOutput{Recommendations: []recommendation.Recommendation{{
			ID:              "r1",
			Type:            recommendation.TypeExtendTime,
			Confidence:      0.75,
			Difficulty:      recommendation.DifficultyLow,
			SuggestedChange: recommendation.SuggestedChange{TaskID: "t1", NewEstimateMinutes: 72},
		}}}}
		w := do(newRouter(uc, &mockTasks{}), http.MethodGet, "/api/v1/recommendations?days=7", "")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if uc.gotInput.LookaheadDays != 7 || uc.gotInput.NextID == nil {
			t.Errorf("unexpected input %+v", uc.gotInput)
		}

		var body struct {
			Data struct {
				Recommendations []map[string]any `json:"recommendations"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		change := body.Data.Recommendations[0]["suggested_change"].(map[string]any)
		if change["task_id"] != "t1" || change["new_estimate_minutes"] != float64(72) {
			t.Errorf("unexpected suggested_change %v", change)
		}
		if _, ok := change["new_start"]; ok {
			t.Errorf("unused fields must be omitted: %v", change)
		}
	})

	t.Run("Empty list is an array", func(t *testing.T) {
		w := do(newRouter(&mockUseCase{}, &mockTasks{}), http.MethodGet, "/api/v1/recommendations", "")
		if !strings.Contains(w.Body.String(), `"recommendations":[]`) {
			t.Errorf("expected empty array: %s", w.Body.String())
		}
	})

	t.Run("Store failure", func(t *testing.T) {
		uc := &mockUseCase{err: fmt.Errorf("%w: timeout", recommendation.ErrLoadTasks)}
		w := do(newRouter(uc, &mockTasks{}), http.MethodGet, "/api/v1/recommendations", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestApply(t *testing.T) {
	t.Run("Applies a reschedule", func(t *testing.T) {
		start := time.Date(2025, 3, 13, 9, 0, 0, 0, time.UTC)
		end := start.Add(time.Hour)
		tasks := &mockTasks{out: task.ApplyOutput{Tasks: []model.Task{{ID: "t1", Title: "Install", Status: model.TaskStatusPending, StartAt: &start, EndAt: &end}}}}
		body := `{"type":"reschedule","task_ids":["t1"],"suggested_change":{"task_id":"t1","new_start":"2025-03-13T09:00:00Z","new_end":"2025-03-13T10:00:00Z"}}`

		w := do(newRouter(&mockUseCase{}, tasks), http.MethodPost, "/api/v1/recommendations/apply", body)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		in := tasks.gotInput
		if in.Type != recommendation.TypeReschedule || in.Change.TaskID != "t1" || in.Change.NewStart == nil || !in.Change.NewStart.Equal(start) {
			t.Errorf("unexpected input %+v", in)
		}
		if tasks.gotScope.UserID != "owner-1" {
			t.Errorf("unexpected scope %+v", tasks.gotScope)
		}
		if !strings.Contains(w.Body.String(), `"start_at":"2025-03-13T09:00:00Z"`) {
			t.Errorf("unexpected body %s", w.Body.String())
		}
	})

	tests := []struct {
		name string
		body string
		err  error
		want int
	}{
		{name: "Unknown type", body: `{"type":"delete","task_ids":["t1"]}`, want: http.StatusBadRequest},
		{name: "Missing type", body: `{"task_ids":["t1"]}`, want: http.StatusBadRequest},
		{name: "Malformed body", body: `{"type":`, want: http.StatusBadRequest},
		{name: "Task not found", body: `{"type":"reassign","task_ids":["x"]}`, err: fmt.Errorf("%w: x", task.ErrTaskNotFound), want: http.StatusNotFound},
		{name: "Invalid change", body: `{"type":"reassign","task_ids":["t1"]}`, err: fmt.Errorf("%w: reassign needs new_assignee", task.ErrInvalidChange), want: http.StatusBadRequest},
		{name: "Update failure", body: `{"type":"merge","task_ids":["a","b"]}`, err: fmt.Errorf("%w: deadlock", task.ErrUpdateTask), want: http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(newRouter(&mockUseCase{}, &mockTasks{err: tt.err}), http.MethodPost, "/api/v1/recommendations/apply", tt.body)
			if w.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, w.Code, w.Body.String())
			}
		})
	}
}
