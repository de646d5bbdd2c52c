package scheduling

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"scheduling-intelligence/internal/model"
)

func TestScore_AllFactorsCritical(t *testing.T) {
	e := newTestEngine(t, "UTC")
	now := time.Date(2025, 3, 15, 8, 0, 0, 0, time.UTC)
	due := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	got := e.Score(PriorityInput{
		DueDate:      &due,
		SourceModule: "SALE",
		SLAMinutes:   ptrInt(60),
		RiskDetected: true,
		ClientIsVIP:  true,
	}, now)

	assert.Equal(t, 120, got.Score)
	assert.Equal(t, model.PriorityCritical, got.Priority)
}

func TestScore_TimePressure(t *testing.T) {
	e := newTestEngine(t, "UTC")
	now := time.Date(2025, 3, 15, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		due  *time.Time
		want int
	}{
		{name: "no due date", due: nil, want: 5},
		{name: "overdue", due: ptrTime(now.Add(-48 * time.Hour)), want: 45},
		{name: "in five minutes", due: ptrTime(now.Add(5 * time.Minute)), want: 45},
		{name: "late tonight", due: ptrTime(time.Date(2025, 3, 15, 23, 59, 0, 0, time.UTC)), want: 45},
		{name: "tomorrow morning", due: ptrTime(time.Date(2025, 3, 16, 7, 0, 0, 0, time.UTC)), want: 35},
		{name: "within 72h", due: ptrTime(now.Add(60 * time.Hour)), want: 20},
		{name: "next week", due: ptrTime(now.Add(7 * 24 * time.Hour)), want: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Score(PriorityInput{DueDate: tt.due, Type: "DELIVERY"}, now)
			assert.Equal(t, tt.want, got.Score)
		})
	}
}

func TestScore_TypeAndSLA(t *testing.T) {
	e := newTestEngine(t, "UTC")
	now := time.Now()

	assert.Equal(t, 20, e.Score(PriorityInput{Type: "CALL", SLAMinutes: ptrInt(30)}, now).Score)
	assert.Equal(t, 10, e.Score(PriorityInput{Type: "CALL"}, now).Score)
	assert.Equal(t, 10, e.Score(PriorityInput{Type: "meeting"}, now).Score)
	assert.Equal(t, 5, e.Score(PriorityInput{Type: "DELIVERY", SLAMinutes: ptrInt(0)}, now).Score)
	assert.Equal(t, 25, e.Score(PriorityInput{Type: "DELIVERY", SourceModule: "SALE"}, now).Score)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, model.PriorityCritical, Classify(81))
	assert.Equal(t, model.PriorityImportant, Classify(80))
	assert.Equal(t, model.PriorityImportant, Classify(40))
	assert.Equal(t, model.PriorityNormal, Classify(39))
	assert.Equal(t, model.PriorityNormal, Classify(0))
}

func TestPriorityInputFor(t *testing.T) {
	due := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	in := PriorityInputFor(model.Task{DueDate: &due, Type: "CALL", SourceModule: "SALE", SLAMinutes: ptrInt(10)}, true, false)

	assert.Equal(t, &due, in.DueDate)
	assert.Equal(t, "CALL", in.Type)
	assert.True(t, in.RiskDetected)
	assert.False(t, in.ClientIsVIP)
}

// TestScore_Property_Monotonic raises one factor at a time and checks the score never drops.
func TestScore_Property_Monotonic(t *testing.T) {
	e := newTestEngine(t, "UTC")
	rng := rand.New(rand.NewSource(99))
	now := time.Date(2025, 3, 15, 8, 0, 0, 0, time.UTC)
	types := []string{"CALL", "MEETING", "DELIVERY", "ADMIN"}

	raise := []func(PriorityInput) PriorityInput{
		func(in PriorityInput) PriorityInput { in.ClientIsVIP = true; return in },
		func(in PriorityInput) PriorityInput { in.RiskDetected = true; return in },
		func(in PriorityInput) PriorityInput { in.SourceModule = "SALE"; return in },
		func(in PriorityInput) PriorityInput { in.SLAMinutes = ptrInt(60); return in },
		func(in PriorityInput) PriorityInput {
			if in.DueDate != nil {
				earlier := in.DueDate.Add(-time.Duration(rng.Intn(72)) * time.Hour)
				in.DueDate = &earlier
			}
			return in
		},
	}

	for trial := 0; trial < 300; trial++ {
		in := PriorityInput{
			Type:         types[rng.Intn(len(types))],
			RiskDetected: rng.Intn(2) == 1,
			ClientIsVIP:  rng.Intn(2) == 1,
		}
		if rng.Intn(3) > 0 {
			in.DueDate = ptrTime(now.Add(time.Duration(rng.Intn(24*10)-24) * time.Hour))
		}
		base := e.Score(in, now).Score
		for i, f := range raise {
			raised := e.Score(f(in), now).Score
			assert.GreaterOrEqual(t, raised, base, "trial %d factor %d", trial, i)
		}
	}
}

func TestPriorityInputForEvent_MatchesTask(t *testing.T) {
	e := newTestEngine(t, "UTC")
	now := time.Date(2025, 3, 15, 8, 0, 0, 0, time.UTC)
	task := model.Task{
		ID:           "t1",
		Type:         "MEETING",
		SourceModule: "sale",
		SLAMinutes:   ptrInt(45),
		DueDate:      ptrTime(now.Add(20 * time.Hour)),
	}

	ev := e.Normalize(task, now)
	assert.Equal(t, PriorityInputFor(task, true, false), PriorityInputForEvent(ev, true, false))
	assert.Equal(t, 90, e.Score(PriorityInputForEvent(ev, true, false), now).Score)
}
