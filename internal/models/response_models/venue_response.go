package response_models

import (
	"ohrid/internal/catalog"
	"ohrid/internal/planner"
)

type VenueListingResponse struct {
	At      string                  `json:"at"`
	Bucket  planner.TimeBucket      `json:"bucket"`
	Weekend bool                    `json:"weekend"`
	Groups  []planner.CategoryGroup `json:"groups"`
	Other   []catalog.Venue         `json:"other,omitempty"`
}

type EventsResponse struct {
	Date   string          `json:"date,omitempty"`
	Events []catalog.Event `json:"events"`
}
