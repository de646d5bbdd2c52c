package http

import (
	"time"

	"scheduling-intelligence/internal/model"
	"scheduling-intelligence/internal/task"
)

type eventsReq struct {
	From string `form:"from"`
	To   string `form:"to"`
}

func (r eventsReq) toInput() task.AgendaInput {
	return task.AgendaInput{From: r.From, To: r.To}
}

type weekReq struct {
	Day string `form:"day"`
}

func (r weekReq) toInput() task.WeekInput {
	return task.WeekInput{Day: r.Day}
}

type invalidateReq struct {
	From string `json:"from" binding:"required"`
	To   string `json:"to"`
}

func (r invalidateReq) toInput() task.InvalidateInput {
	return task.InvalidateInput{From: r.From, To: r.To}
}

type priorityResp struct {
	Score    int    `json:"score"`
	Priority string `json:"priority"`
}

type riskResp struct {
	Overlap          bool `json:"overlap"`
	Overload         bool `json:"overload"`
	ImpossibleTiming bool `json:"impossible_timing"`
}

type eventResp struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Start           time.Time     `json:"start"`
	End             time.Time     `json:"end"`
	DurationMinutes int           `json:"duration_minutes"`
	Status          string        `json:"status"`
	Type            string        `json:"type,omitempty"`
	Priority        string        `json:"priority,omitempty"`
	AutoPriority    *priorityResp `json:"auto_priority,omitempty"`
	DueDate         *time.Time    `json:"due_date,omitempty"`
	Risk            *riskResp     `json:"risk,omitempty"`
	AssignedTo      string        `json:"assigned_to,omitempty"`
	ClientID        string        `json:"client_id,omitempty"`
	ClientName      string        `json:"client_name,omitempty"`
	LeadName        string        `json:"lead_name,omitempty"`
}

func newEventResp(ev model.CalendarEvent) eventResp {
	resp := eventResp{
		ID:              ev.ID,
		Title:           ev.Title,
		Start:           ev.Start,
		End:             ev.End,
		DurationMinutes: int(ev.Duration().Minutes()),
		Status:          string(ev.Status),
		Type:            ev.Type,
		Priority:        string(ev.Priority),
		DueDate:         ev.DueDate,
		AssignedTo:      ev.AssignedTo,
		ClientID:        ev.ClientID,
		ClientName:      ev.ClientName,
		LeadName:        ev.LeadName,
	}
	if ev.AutoPriority != nil {
		resp.AutoPriority = &priorityResp{Score: ev.AutoPriority.Score, Priority: string(ev.AutoPriority.Priority)}
	}
	if ev.Risk != nil {
		resp.Risk = &riskResp{Overlap: ev.Risk.Overlap, Overload: ev.Risk.Overload, ImpossibleTiming: ev.Risk.ImpossibleTiming}
	}
	return resp
}

func newEventResps(events []model.CalendarEvent) []eventResp {
	out := make([]eventResp, 0, len(events))
	for _, ev := range events {
		out = append(out, newEventResp(ev))
	}
	return out
}

type eventsResp struct {
	From   time.Time   `json:"from"`
	To     time.Time   `json:"to"`
	Events []eventResp `json:"events"`
}

func (h *handler) newEventsResp(o task.AgendaOutput) eventsResp {
	return eventsResp{From: o.From, To: o.To, Events: newEventResps(o.Events)}
}

type dayResp struct {
	Day    string      `json:"day"`
	Events []eventResp `json:"events"`
}

type weekResp struct {
	WeekStart time.Time `json:"week_start"`
	Days      []dayResp `json:"days"`
}

func (h *handler) newWeekResp(o task.WeekOutput) weekResp {
	days := make([]dayResp, 0, len(o.Days))
	for _, d := range o.Days {
		days = append(days, dayResp{Day: d.Day, Events: newEventResps(d.Events)})
	}
	return weekResp{WeekStart: o.WeekStart, Days: days}
}
