package planner

import (
	"strings"
	"time"
)

type TimeOfDay string

const (
	TimeOfDayUnset TimeOfDay = ""
	Daytime        TimeOfDay = "Daytime"
	Nighttime      TimeOfDay = "Nighttime"
)

// AnyTime is the sentinel slot value. It always sorts after clock times.
const AnyTime = "Any time"

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
	anyTimeKey  = "99:99"
)

type PlanItem struct {
	ID           int64     `json:"id"`
	Date         string    `json:"date"`
	TimeOfDay    TimeOfDay `json:"timeOfDay"`
	ActivityType string    `json:"activityType"`
	VenueID      *int      `json:"venueId,omitempty"`
	Time         string    `json:"time"`
	Notes        string    `json:"notes"`
	IsEvent      bool      `json:"isEvent"`
}

// Plan maps an ISO date to its ordered items. A key is present only while its list is non-empty.
type Plan map[string][]PlanItem

func (p Plan) clone() Plan {
	out := make(Plan, len(p))
	for date, items := range p {
		out[date] = cloneItems(items)
	}
	return out
}

func cloneItems(items []PlanItem) []PlanItem {
	if items == nil {
		return nil
	}
	out := make([]PlanItem, len(items))
	for i, it := range items {
		out[i] = cloneItem(it)
	}
	return out
}

// cloneItem detaches the venue pointer so callers never share it with the store.
func cloneItem(it PlanItem) PlanItem {
	if it.VenueID != nil {
		v := *it.VenueID
		it.VenueID = &v
	}
	return it
}

func (it PlanItem) hasVenue(id *int) bool {
	if it.VenueID == nil || id == nil {
		return false
	}
	return *it.VenueID == *id
}

func ParseTimeOfDay(s string) (TimeOfDay, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return TimeOfDayUnset, true
	case "daytime", "day":
		return Daytime, true
	case "nighttime", "night":
		return Nighttime, true
	}
	return TimeOfDayUnset, false
}

// ValidDate reports whether s is an ISO calendar date (YYYY-MM-DD).
func ValidDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// ValidTime accepts HH:MM clock times and the AnyTime sentinel.
func ValidTime(s string) bool {
	if s == AnyTime {
		return true
	}
	if len(s) != len(clockLayout) {
		return false
	}
	_, err := time.Parse(clockLayout, s)
	return err == nil
}

// TimeOfDayFor derives the day/night half a clock time belongs to.
// Times from 19:00 up to 04:59 count as night; AnyTime counts as day.
func TimeOfDayFor(clock string) TimeOfDay {
	if clock == AnyTime {
		return Daytime
	}
	t, err := time.Parse(clockLayout, clock)
	if err != nil {
		return Daytime
	}
	if h := t.Hour(); h >= 19 || h < 5 {
		return Nighttime
	}
	return Daytime
}

func sortKey(clock string) string {
	if clock == AnyTime {
		return anyTimeKey
	}
	return clock
}
