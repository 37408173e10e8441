package request_models

type AddItemRequest struct {
	ActivityType string `json:"activityType" binding:"required"`
	VenueID      *int   `json:"venueId"`
	Time         string `json:"time"`
	Notes        string `json:"notes"`
}

type ReorderRequest struct {
	From *int `json:"from" binding:"required"`
	To   *int `json:"to" binding:"required"`
}

type ImportPlanRequest struct {
	// Token is the value of the "plan" share parameter.
	Token string `json:"plan" binding:"required"`
}
