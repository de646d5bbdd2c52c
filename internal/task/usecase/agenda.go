package usecase

import (
	"context"
	"fmt"
	"time"

	"scheduling-intelligence/internal/calendarcache"
	"scheduling-intelligence/internal/model"
	"scheduling-intelligence/internal/scheduling"
	"scheduling-intelligence/internal/task"
	"scheduling-intelligence/internal/task/repository"
)

// Agenda serves the range from the owner's cache, loading it from the store first when needed.
func (uc *implUseCase) Agenda(ctx context.Context, sc model.Scope, input task.AgendaInput) (task.AgendaOutput, error) {
	now := uc.now()
	r, err := uc.parseRange(input.From, input.To, now)
	if err != nil {
		return task.AgendaOutput{}, err
	}

	if err := uc.ensureLoaded(ctx, sc, r, now); err != nil {
		return task.AgendaOutput{}, err
	}

	var events []model.CalendarEvent
	uc.sessions.Get(sc.UserID).Do(func(store *calendarcache.Store) {
		events = store.GetEventsForRange(r)
	})

	return task.AgendaOutput{
		From:   r.Start,
		To:     r.End,
		Events: uc.enrich(ctx, events, now),
	}, nil
}

// Week serves the seven day buckets of the week containing input.Day.
func (uc *implUseCase) Week(ctx context.Context, sc model.Scope, input task.WeekInput) (task.WeekOutput, error) {
	now := uc.now()
	day := uc.days.StartOfDay(now)
	if input.Day != "" {
		d, err := uc.days.ParseDate(input.Day, now)
		if err != nil {
			return task.WeekOutput{}, fmt.Errorf("%w: day: %v", task.ErrInvalidRange, err)
		}
		day = d
	}

	monday := uc.days.WeekStart(day)
	r := calendarcache.Range{Start: monday, End: uc.days.StartOfDay(monday.AddDate(0, 0, 7))}
	if err := uc.ensureLoaded(ctx, sc, r, now); err != nil {
		return task.WeekOutput{}, err
	}

	var week []calendarcache.DayEvents
	uc.sessions.Get(sc.UserID).Do(func(store *calendarcache.Store) {
		week = store.GetEventsForWeek(day)
	})

	// Risk is evaluated over the whole week, then split back per day.
	var all []model.CalendarEvent
	for _, d := range week {
		all = append(all, d.Events...)
	}
	enriched := make(map[string]model.CalendarEvent, len(all))
	for _, ev := range uc.enrich(ctx, all, now) {
		enriched[ev.ID] = ev
	}

	out := task.WeekOutput{WeekStart: monday, Days: make([]task.DayAgenda, 0, len(week))}
	for _, d := range week {
		events := make([]model.CalendarEvent, 0, len(d.Events))
		for _, ev := range d.Events {
			events = append(events, enriched[ev.ID])
		}
		out.Days = append(out.Days, task.DayAgenda{Day: d.Key, Events: events})
	}
	return out, nil
}

// Invalidate drops the range from the owner's cache.
func (uc *implUseCase) Invalidate(ctx context.Context, sc model.Scope, input task.InvalidateInput) error {
	r, err := uc.parseRange(input.From, input.To, uc.now())
	if err != nil {
		return err
	}
	uc.sessions.Get(sc.UserID).Do(func(store *calendarcache.Store) {
		store.InvalidateRange(r)
	})
	uc.l.Debugf(ctx, "task.Invalidate: owner=%s range=[%s, %s)", sc.UserID, uc.days.DayKey(r.Start), uc.days.DayKey(r.End))
	return nil
}

// ensureLoaded fetches and caches the range unless a loaded interval already covers it.
// The store query runs outside the session lock; AddRange is idempotent.
func (uc *implUseCase) ensureLoaded(ctx context.Context, sc model.Scope, r calendarcache.Range, now time.Time) error {
	session := uc.sessions.Get(sc.UserID)

	var loaded bool
	session.Do(func(store *calendarcache.Store) {
		loaded = store.IsRangeLoaded(r)
	})
	if loaded {
		return nil
	}

	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		OwnerID:       sc.UserID,
		Status:        model.TaskStatusPending,
		ScheduledFrom: &r.Start,
		ScheduledTo:   &r.End,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.ensureLoaded ListTasks: %v", err)
		return fmt.Errorf("%w: %v", task.ErrLoadTasks, err)
	}

	events := uc.engine.NormalizeAll(tasks, now)
	session.Do(func(store *calendarcache.Store) {
		store.AddRange(r, events)
	})
	uc.l.Debugf(ctx, "task.ensureLoaded: owner=%s range=[%s, %s) events=%d",
		sc.UserID, uc.days.DayKey(r.Start), uc.days.DayKey(r.End), len(events))
	return nil
}

// enrich flags risks over the given set and scores each event.
func (uc *implUseCase) enrich(ctx context.Context, events []model.CalendarEvent, now time.Time) []model.CalendarEvent {
	risks := uc.engine.DetectRisks(scheduling.RiskInputs(events))
	vip := make(map[string]bool)

	out := make([]model.CalendarEvent, 0, len(events))
	for _, ev := range events {
		flags := risks[ev.ID]
		ev.Risk = &flags

		isVIP, ok := vip[ev.ClientID]
		if !ok {
			isVIP = uc.isVIP(ctx, ev.ClientID)
			vip[ev.ClientID] = isVIP
		}

		score := uc.engine.Score(scheduling.PriorityInputForEvent(ev, flags.Any(), isVIP), now)
		ev.AutoPriority = &score
		out = append(out, ev)
	}
	return out
}

func (uc *implUseCase) isVIP(ctx context.Context, clientID string) bool {
	if clientID == "" {
		return false
	}
	vip, err := uc.clients.IsVIPClient(ctx, clientID)
	if err != nil {
		uc.l.Warnf(ctx, "task.isVIP: client=%s: %v", clientID, err)
		return false
	}
	return vip
}

// parseRange resolves [startOfDay(from), nextDay(to)). Empty from is today,
// empty to spans seven days.
func (uc *implUseCase) parseRange(from, to string, now time.Time) (calendarcache.Range, error) {
	start := uc.days.StartOfDay(now)
	if from != "" {
		t, err := uc.days.ParseDate(from, now)
		if err != nil {
			return calendarcache.Range{}, fmt.Errorf("%w: from: %v", task.ErrInvalidRange, err)
		}
		start = uc.days.StartOfDay(t)
	}

	last := start.AddDate(0, 0, defaultAgendaDays-1)
	if to != "" {
		t, err := uc.days.ParseDate(to, now)
		if err != nil {
			return calendarcache.Range{}, fmt.Errorf("%w: to: %v", task.ErrInvalidRange, err)
		}
		last = t
	}

	r := calendarcache.Range{Start: start, End: uc.days.NextDay(last)}
	if !r.Valid() {
		return calendarcache.Range{}, fmt.Errorf("%w: to is before from", task.ErrInvalidRange)
	}
	return r, nil
}
