package http

import (
	"scheduling-intelligence/internal/prediction"
)

type listReq struct {
	Days int `form:"days" binding:"omitempty,min=0"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput(def int) prediction.PredictInput {
	return prediction.PredictInput{LookaheadDays: prediction.ClampLookahead(r.Days, def)}
}

type listResp struct {
	Predictions []prediction.Prediction `json:"predictions"`
}

func (h *handler) newListResp(o prediction.PredictOutput) listResp {
	preds := o.Predictions
	if preds == nil {
		preds = []prediction.Prediction{}
	}
	return listResp{Predictions: preds}
}
