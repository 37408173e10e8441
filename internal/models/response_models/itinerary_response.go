package response_models

import "ohrid/internal/planner"

type ItineraryOptionsResponse struct {
	Interests    []planner.Option `json:"interests"`
	Companies    []planner.Option `json:"companies"`
	Templates    []string         `json:"templates"`
	MaxInterests int              `json:"maxInterests"`
}

type SessionResponse struct {
	State       planner.SessionState `json:"state"`
	Selection   planner.Selection    `json:"selection"`
	Suggestions []planner.Suggestion `json:"suggestions"`
}

type ToggleResponse struct {
	Added bool               `json:"added"`
	Item  planner.PlanItem   `json:"item"`
	Date  string             `json:"date"`
	Items []planner.PlanItem `json:"items"`
}
