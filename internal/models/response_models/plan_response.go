package response_models

import "ohrid/internal/planner"

type PlanDayResponse struct {
	Date  string             `json:"date"`
	Items []planner.PlanItem `json:"items"`
}

type ReorderResponse struct {
	Moved bool               `json:"moved"`
	Items []planner.PlanItem `json:"items"`
}

type ShareResponse struct {
	Date  string `json:"date"`
	Token string `json:"token"`
	URL   string `json:"url,omitempty"`
}

type TimeSlotsResponse struct {
	TimeOfDay string   `json:"timeOfDay,omitempty"`
	Slots     []string `json:"slots"`
}
