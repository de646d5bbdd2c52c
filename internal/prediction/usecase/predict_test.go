package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scheduling-intelligence/internal/model"
	"scheduling-intelligence/internal/prediction"
	"scheduling-intelligence/internal/task/repository"
	"scheduling-intelligence/pkg/datemath"
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

type mockRepo struct {
	byStatus map[model.TaskStatus][]model.Task
	errOn    model.TaskStatus
	calls    []repository.ListTasksOptions
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	m.calls = append(m.calls, opt)
	if m.errOn != "" && opt.Status == m.errOn {
		return nil, errors.New("connection reset")
	}
	return m.byStatus[opt.Status], nil
}

func (m *mockRepo) GetTask(ctx context.Context, opt repository.GetTaskOptions) (model.Task, error) {
	return model.Task{}, nil
}

func (m *mockRepo) UpdateTasks(ctx context.Context, opts []repository.UpdateTaskOptions) ([]model.Task, error) {
	return nil, nil
}

var testNow = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

func newTestUseCase(t *testing.T, repo repository.Repository) *implUseCase {
	t.Helper()
	days, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	uc := New(&mockLogger{}, repo, days, Config{}).(*implUseCase)
	uc.now = func() time.Time { return testNow }
	return uc
}

func ptrInt(v int) *int { return &v }

func done(id, typ, assignee string, minutes int) model.Task {
	created := testNow.AddDate(0, 0, -7)
	completed := created.Add(time.Duration(minutes) * time.Minute)
	return model.Task{ID: id, Type: typ, AssignedTo: assignee, Status: model.TaskStatusDone, CreatedAt: created, CompletedAt: &completed}
}

func pending(id, typ string, estimate int, due time.Time) model.Task {
	t := model.Task{ID: id, Title: "Task " + id, Type: typ, Status: model.TaskStatusPending, DueDate: &due}
	if estimate > 0 {
		t.EstimatedMinutes = ptrInt(estimate)
	}
	return t
}

func findType(preds []prediction.Prediction, typ prediction.Type) []prediction.Prediction {
	var out []prediction.Prediction
	for _, p := range preds {
		if p.Type == typ {
			out = append(out, p)
		}
	}
	return out
}

func TestCompute_TypeOverrunScenario(t *testing.T) {
	uc := newTestUseCase(t, &mockRepo{})
	due := testNow.AddDate(0, 0, 5)

	preds := uc.compute(engineInput{
		now:       testNow,
		completed: []model.Task{done("h1", "CALL", "", 40), done("h2", "CALL", "", 50)},
		pending:   []model.Task{pending("p1", "CALL", 30, due), pending("p2", "CALL", 30, due)},
	})

	overrun := findType(preds, prediction.TypeTypeOverrun)
	require.Len(t, overrun, 1)
	assert.InDelta(t, 0.75, overrun[0].Probability, 1e-9)
	assert.Equal(t, prediction.ImpactHigh, overrun[0].ImpactLevel)
	assert.Equal(t, "CALL", overrun[0].TaskType)
	assert.Len(t, overrun[0].AffectedTasks, 2)

	delay := findType(preds, prediction.TypeDelayProbability)
	require.Len(t, delay, 1)
	assert.InDelta(t, 0.5, delay[0].Probability, 1e-9)
	assert.Equal(t, prediction.ImpactHigh, delay[0].ImpactLevel)

	assert.Empty(t, findType(preds, prediction.TypeDeadlineBreach), "nothing due within 48h")
}

func TestCompute_NoOverrunBelowThreshold(t *testing.T) {
	uc := newTestUseCase(t, &mockRepo{})
	due := testNow.AddDate(0, 0, 1)

	preds := uc.compute(engineInput{
		now:       testNow,
		completed: []model.Task{done("h1", "CALL", "", 35)},
		pending:   []model.Task{pending("p1", "CALL", 30, due)},
	})

	assert.Empty(t, preds)
}

func TestCompute_DaySaturationScenario(t *testing.T) {
	uc := newTestUseCase(t, &mockRepo{})
	day := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	preds := uc.compute(engineInput{
		now: testNow,
		pending: []model.Task{
			pending("a", "DELIVERY", 200, day.Add(9*time.Hour)),
			pending("b", "DELIVERY", 200, day.Add(13*time.Hour)),
			pending("c", "ADMIN", 150, day.Add(17*time.Hour)),
			pending("d", "ADMIN", 400, day.AddDate(0, 0, 1)),
		},
	})

	sat := findType(preds, prediction.TypeDaySaturation)
	require.Len(t, sat, 1)
	assert.InDelta(t, 0.5+(550.0/480.0-1)*0.5, sat[0].Probability, 1e-9)
	assert.InDelta(t, 0.573, sat[0].Probability, 1e-3)
	assert.Equal(t, "2025-03-12", sat[0].Day)
	assert.InDelta(t, 550.0, sat[0].TotalMinutes, 1e-9)
	assert.Len(t, sat[0].AffectedTasks, 3)
}

func TestCompute_DaySaturationUsesTypeAverageThenFallback(t *testing.T) {
	uc := newTestUseCase(t, &mockRepo{})
	due := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)

	pendingTasks := []model.Task{pending("fallback", "ADMIN", 0, due)}
	for i := 0; i < 5; i++ {
		pendingTasks = append(pendingTasks, pending(string(rune('a'+i)), "INSTALL", 0, due))
	}

	preds := uc.compute(engineInput{
		now:       testNow,
		completed: []model.Task{done("h1", "INSTALL", "", 100)},
		pending:   pendingTasks,
	})

	sat := findType(preds, prediction.TypeDaySaturation)
	require.Len(t, sat, 1)
	assert.InDelta(t, 530.0, sat[0].TotalMinutes, 1e-9) // 5*100 + 30
}

func TestCompute_DaySaturationKeepsFractionalTotal(t *testing.T) {
	uc := newTestUseCase(t, &mockRepo{})
	due := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)

	var history []model.Task
	for i := 0; i < 9; i++ {
		history = append(history, done(fmt.Sprintf("h%d", i), "SURVEY", "", 160))
	}
	history = append(history, done("h9", "SURVEY", "", 161))

	preds := uc.compute(engineInput{
		now:       testNow,
		completed: history,
		pending: []model.Task{
			pending("a", "SURVEY", 0, due),
			pending("b", "SURVEY", 0, due),
			pending("c", "SURVEY", 0, due),
		},
	})

	sat := findType(preds, prediction.TypeDaySaturation)
	require.Len(t, sat, 1)
	assert.InDelta(t, 480.3, sat[0].TotalMinutes, 1e-6)
	assert.Greater(t, sat[0].TotalMinutes, 480.0)
}

func TestCompute_DelayProbabilityAveragesLikelyTasksOnly(t *testing.T) {
	uc := newTestUseCase(t, &mockRepo{})
	due := testNow.AddDate(0, 0, 5)

	preds := uc.compute(engineInput{
		now: testNow,
		completed: []model.Task{
			done("h1", "CALL", "", 45),    // ratio 1.5, p 0.5
			done("h2", "INSTALL", "", 60), // ratio 2.0, p 0.7
			done("h3", "ADMIN", "", 39),   // ratio 1.3, p 0.42
		},
		pending: []model.Task{
			pending("call", "CALL", 30, due),
			pending("install", "INSTALL", 30, due),
			pending("admin", "ADMIN", 30, due),
		},
	})

	delay := findType(preds, prediction.TypeDelayProbability)
	require.Len(t, delay, 1)
	assert.InDelta(t, 0.6, delay[0].Probability, 1e-9)
	assert.Equal(t, prediction.ImpactHigh, delay[0].ImpactLevel)

	ids := make([]string, 0, len(delay[0].AffectedTasks))
	for _, a := range delay[0].AffectedTasks {
		ids = append(ids, a.ID)
	}
	assert.ElementsMatch(t, []string{"call", "install"}, ids)
}

func TestCompute_ClientRisk(t *testing.T) {
	uc := newTestUseCase(t, &mockRepo{})
	due := testNow.AddDate(0, 0, 3)

	withClient := func(t model.Task, id, name string) model.Task {
		t.ClientID = id
		t.ClientName = name
		return t
	}
	cancelled := func(clientID string) model.Task {
		return model.Task{Status: model.TaskStatusCancelled, ClientID: clientID}
	}

	preds := uc.compute(engineInput{
		now:       testNow,
		cancelled: []model.Task{cancelled("c1"), cancelled("c1"), cancelled("c2"), cancelled("c3"), cancelled("c3"), cancelled("")},
		pending: []model.Task{
			withClient(pending("p1", "CALL", 30, due), "c1", "Acme"),
			withClient(pending("p2", "MEETING", 60, due), "c1", "Acme"),
			withClient(pending("p3", "CALL", 30, due), "c2", "Globex"),
		},
	})

	risk := findType(preds, prediction.TypeClientRisk)
	require.Len(t, risk, 1)
	assert.Equal(t, "c1", risk[0].ClientID)
	assert.InDelta(t, 0.6, risk[0].Probability, 1e-9)
	assert.Equal(t, prediction.ImpactMedium, risk[0].ImpactLevel)
	assert.Contains(t, risk[0].Title, "Acme")
	assert.Len(t, risk[0].AffectedTasks, 2)
}

func TestCompute_DeadlineBreach(t *testing.T) {
	uc := newTestUseCase(t, &mockRepo{})

	preds := uc.compute(engineInput{
		now:       testNow,
		completed: []model.Task{done("h1", "CALL", "", 39)},
		pending: []model.Task{
			pending("soon", "CALL", 30, testNow.Add(20*time.Hour)),  // ratio 1.3 -> 0.55
			pending("later", "CALL", 30, testNow.Add(72*time.Hour)), // outside 48h
			pending("fine", "CALL", 60, testNow.Add(10*time.Hour)),  // ratio 0.6
		},
	})

	breach := findType(preds, prediction.TypeDeadlineBreach)
	require.Len(t, breach, 1)
	assert.Equal(t, "soon", breach[0].AffectedTasks[0].ID)
	assert.InDelta(t, 0.55, breach[0].Probability, 1e-9)
	assert.Equal(t, prediction.ImpactMedium, breach[0].ImpactLevel)

	assert.Empty(t, findType(preds, prediction.TypeDelayProbability), "ratio 1.3 gives delay p=0.42")
}

func TestCompute_Ordering(t *testing.T) {
	uc := newTestUseCase(t, &mockRepo{})
	day := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	preds := uc.compute(engineInput{
		now:       testNow,
		completed: []model.Task{done("h1", "CALL", "", 60)},
		cancelled: []model.Task{{Status: model.TaskStatusCancelled, ClientID: "c1"}, {Status: model.TaskStatusCancelled, ClientID: "c1"}},
		pending: []model.Task{
			func() model.Task {
				p := pending("call", "CALL", 30, testNow.Add(24*time.Hour))
				p.ClientID = "c1"
				return p
			}(),
			pending("big1", "ADMIN", 300, day.Add(10*time.Hour)),
			pending("big2", "ADMIN", 300, day.Add(11*time.Hour)),
		},
	})

	require.NotEmpty(t, preds)
	for i := 1; i < len(preds); i++ {
		prev, cur := preds[i-1], preds[i]
		if prev.ImpactLevel == cur.ImpactLevel {
			assert.GreaterOrEqual(t, prev.Probability, cur.Probability, "probability descending within %s", cur.ImpactLevel)
		} else {
			assert.Less(t, prev.ImpactLevel.Rank(), cur.ImpactLevel.Rank(), "impact ordering")
		}
	}
	assert.Equal(t, prediction.ImpactHigh, preds[0].ImpactLevel)
}

func TestCompute_EmptyHistoryIsNoSignal(t *testing.T) {
	uc := newTestUseCase(t, &mockRepo{})
	preds := uc.compute(engineInput{
		now:     testNow,
		pending: []model.Task{pending("p1", "CALL", 30, testNow.Add(time.Hour))},
	})
	assert.Empty(t, preds)
}

func TestPredict(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "owner-1"}

	t.Run("Loads window and history", func(t *testing.T) {
		repo := &mockRepo{byStatus: map[model.TaskStatus][]model.Task{
			model.TaskStatusPending: {pending("p1", "CALL", 30, testNow.AddDate(0, 0, 2))},
			model.TaskStatusDone:    {done("h1", "CALL", "", 45)},
		}}
		uc := newTestUseCase(t, repo)

		out, err := uc.Predict(ctx, sc, prediction.PredictInput{LookaheadDays: 7})
		require.NoError(t, err)
		assert.Len(t, findType(out.Predictions, prediction.TypeTypeOverrun), 1)

		require.Len(t, repo.calls, 3)
		pendingOpt := repo.calls[0]
		assert.Equal(t, "owner-1", pendingOpt.OwnerID)
		assert.Equal(t, model.TaskStatusPending, pendingOpt.Status)
		assert.True(t, pendingOpt.DueFrom.Equal(testNow))
		assert.True(t, pendingOpt.DueTo.Equal(testNow.AddDate(0, 0, 7)))
		assert.True(t, repo.calls[1].CompletedOnly)
		assert.Equal(t, model.TaskStatusCancelled, repo.calls[2].Status)
	})

	t.Run("Default and clamped lookahead", func(t *testing.T) {
		repo := &mockRepo{}
		uc := newTestUseCase(t, repo)

		_, err := uc.Predict(ctx, sc, prediction.PredictInput{})
		require.NoError(t, err)
		assert.True(t, repo.calls[0].DueTo.Equal(testNow.AddDate(0, 0, 14)))

		_, err = uc.Predict(ctx, sc, prediction.PredictInput{LookaheadDays: 365})
		require.NoError(t, err)
		assert.True(t, repo.calls[3].DueTo.Equal(testNow.AddDate(0, 0, 60)))
	})

	t.Run("Store failure", func(t *testing.T) {
		uc := newTestUseCase(t, &mockRepo{errOn: model.TaskStatusDone})

		_, err := uc.Predict(ctx, sc, prediction.PredictInput{})
		assert.ErrorIs(t, err, prediction.ErrLoadTasks)
	})
}

func TestImpactFor(t *testing.T) {
	assert.Equal(t, prediction.ImpactHigh, prediction.ImpactFor(0.7))
	assert.Equal(t, prediction.ImpactMedium, prediction.ImpactFor(0.69))
	assert.Equal(t, prediction.ImpactMedium, prediction.ImpactFor(0.4))
	assert.Equal(t, prediction.ImpactLow, prediction.ImpactFor(0.39))
}
