package planner

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"ohrid/internal/catalog"
)

type SessionState string

const (
	StateIdle      SessionState = "idle"
	StateSelecting SessionState = "selecting"
	StateGenerated SessionState = "generated"
)

// Session tracks one pass through the itinerary wizard:
// idle -> selecting -> generated -> idle (start over).
// It is not safe for concurrent use.
type Session struct {
	State       SessionState `json:"state"`
	Selection   Selection    `json:"selection"`
	Suggestions []Suggestion `json:"suggestions,omitempty"`
}

func NewSession() *Session {
	return &Session{State: StateIdle}
}

func (s *Session) Start() error {
	if s.State != StateIdle {
		return ErrInvalidState
	}
	s.State = StateSelecting
	s.Selection = Selection{}
	s.Suggestions = nil
	return nil
}

// Select replaces the current choices. Partial selections are accepted here;
// completeness is only enforced by Generate.
func (s *Session) Select(sel Selection) error {
	if s.State != StateSelecting {
		return ErrInvalidState
	}
	if len(sel.Interests) > MaxInterests {
		return ErrTooManyInterests
	}
	for _, name := range sel.Interests {
		if _, ok := findOption(interests, name); !ok {
			return fmt.Errorf("%w: interest %q", ErrUnknownOption, name)
		}
	}
	if sel.Company != "" {
		if _, ok := findOption(companies, sel.Company); !ok {
			return fmt.Errorf("%w: company %q", ErrUnknownOption, sel.Company)
		}
	}
	if sel.Template != "" {
		if _, ok := findTemplate(sel.Template); !ok {
			return fmt.Errorf("%w: template %q", ErrUnknownOption, sel.Template)
		}
	}
	s.Selection = sel
	return nil
}

// Generate runs the recommender. From generated it re-rolls the same selection.
func (s *Session) Generate(r *Recommender, venues []catalog.Venue) ([]Suggestion, error) {
	if s.State != StateSelecting && s.State != StateGenerated {
		return nil, ErrInvalidState
	}
	if err := s.Selection.Validate(); err != nil {
		return nil, err
	}
	out, err := r.Generate(venues, s.Selection)
	if err != nil {
		return nil, err
	}
	s.State = StateGenerated
	s.Suggestions = out
	return out, nil
}

func (s *Session) StartOver() {
	s.State = StateIdle
	s.Selection = Selection{}
	s.Suggestions = nil
}

// Suggestion returns the generated suggestion at index.
func (s *Session) Suggestion(index int) (Suggestion, error) {
	if s.State != StateGenerated {
		return Suggestion{}, ErrInvalidState
	}
	if index < 0 || index >= len(s.Suggestions) {
		return Suggestion{}, ErrSuggestionIndex
	}
	return s.Suggestions[index], nil
}

// ItemFor converts an accepted suggestion into the plan item it toggles.
// The activity type is the suggestion type in title case.
func ItemFor(sg Suggestion) (PlanItem, error) {
	if !sg.Acceptable() {
		return PlanItem{}, ErrNotAcceptable
	}
	t := sg.Time
	if t == "" {
		t = AnyTime
	}
	item := PlanItem{
		ActivityType: cases.Title(language.English).String(sg.Type),
		Time:         t,
		Notes:        sg.Text,
		TimeOfDay:    TimeOfDayFor(t),
	}
	if sg.VenueID != nil {
		id := *sg.VenueID
		item.VenueID = &id
	}
	return item, nil
}
