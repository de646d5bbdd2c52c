package http

import (
	"time"

	"github.com/google/uuid"

	"scheduling-intelligence/internal/model"
	"scheduling-intelligence/internal/prediction"
	"scheduling-intelligence/internal/recommendation"
	"scheduling-intelligence/internal/task"
)

type listReq struct {
	Days int `form:"days" binding:"omitempty,min=0"`
}

// toInput gives every request its own id sequence.
func (r listReq) toInput(def int) recommendation.RecommendInput {
	return recommendation.RecommendInput{
		LookaheadDays: prediction.ClampLookahead(r.Days, def),
		NextID:        uuid.NewString,
	}
}

type listResp struct {
	Recommendations []recommendation.Recommendation `json:"recommendations"`
}

func (h *handler) newListResp(o recommendation.RecommendOutput) listResp {
	recs := o.Recommendations
	if recs == nil {
		recs = []recommendation.Recommendation{}
	}
	return listResp{Recommendations: recs}
}

type applyReq struct {
	Type            recommendation.Type            `json:"type" binding:"required"`
	TaskIDs         []string                       `json:"task_ids"`
	SuggestedChange recommendation.SuggestedChange `json:"suggested_change"`
}

func (r applyReq) validate() error {
	if !r.Type.IsValid() {
		return errInvalidType
	}
	return nil
}

func (r applyReq) toInput() task.ApplyInput {
	return task.ApplyInput{
		Type:    r.Type,
		TaskIDs: r.TaskIDs,
		Change:  r.SuggestedChange,
	}
}

type taskResp struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Status           string     `json:"status"`
	Type             string     `json:"type,omitempty"`
	StartAt          *time.Time `json:"start_at,omitempty"`
	EndAt            *time.Time `json:"end_at,omitempty"`
	DueDate          *time.Time `json:"due_date,omitempty"`
	EstimatedMinutes *int       `json:"estimated_minutes,omitempty"`
	AssignedTo       string     `json:"assigned_to,omitempty"`
	Priority         string     `json:"priority,omitempty"`
}

type applyResp struct {
	Tasks []taskResp `json:"tasks"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:               t.ID,
		Title:            t.Title,
		Status:           string(t.Status),
		Type:             t.Type,
		StartAt:          t.StartAt,
		EndAt:            t.EndAt,
		DueDate:          t.DueDate,
		EstimatedMinutes: t.EstimatedMinutes,
		AssignedTo:       t.AssignedTo,
		Priority:         string(t.Priority),
	}
}

func (h *handler) newApplyResp(o task.ApplyOutput) applyResp {
	tasks := make([]taskResp, 0, len(o.Tasks))
	for _, t := range o.Tasks {
		tasks = append(tasks, newTaskResp(t))
	}
	return applyResp{Tasks: tasks}
}
