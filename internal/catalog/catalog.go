// Package catalog holds the read-only venue and event records the planner works from.
package catalog

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// StringList accepts either a single string or a list of strings in source data.
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	var one string
	if err := json.Unmarshal(b, &one); err == nil {
		*l = splitNonEmpty(one)
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return err
	}
	*l = many
	return nil
}

func (l *StringList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*l = splitNonEmpty(value.Value)
		return nil
	}
	var many []string
	if err := value.Decode(&many); err != nil {
		return err
	}
	*l = many
	return nil
}

func splitNonEmpty(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return []string{s}
}

type Venue struct {
	ID       int        `json:"id" yaml:"id"`
	Name     string     `json:"name" yaml:"name"`
	Type     StringList `json:"type" yaml:"type"`
	Tags     StringList `json:"tags" yaml:"tags"`
	Location string     `json:"location" yaml:"location"`
	Rating   float64    `json:"rating" yaml:"rating"`
}

// HasType reports whether the venue carries any of the given category tags (case-insensitive).
func (v Venue) HasType(types ...string) bool {
	for _, t := range v.Type {
		for _, want := range types {
			if strings.EqualFold(strings.TrimSpace(t), want) {
				return true
			}
		}
	}
	return false
}

type Event struct {
	ID           int    `json:"id" yaml:"id"`
	EventName    string `json:"eventName" yaml:"eventName"`
	IsoDate      string `json:"isoDate" yaml:"isoDate"`
	StartTime    string `json:"startTime" yaml:"startTime"`
	VenueID      *int   `json:"venueId,omitempty" yaml:"venueId,omitempty"`
	LocationName string `json:"locationName" yaml:"locationName"`
	Category     string `json:"category" yaml:"category"`
}

// Catalog is the immutable snapshot of venues and events loaded at start-up.
type Catalog struct {
	Venues []Venue
	Events []Event

	venueIdx map[int]int
	eventIdx map[int]int
}

func New(venues []Venue, events []Event) *Catalog {
	c := &Catalog{
		Venues:   venues,
		Events:   events,
		venueIdx: make(map[int]int, len(venues)),
		eventIdx: make(map[int]int, len(events)),
	}
	for i, v := range venues {
		if _, dup := c.venueIdx[v.ID]; !dup {
			c.venueIdx[v.ID] = i
		}
	}
	for i, e := range events {
		if _, dup := c.eventIdx[e.ID]; !dup {
			c.eventIdx[e.ID] = i
		}
	}
	return c
}

// Empty is the catalog used when loading fails.
func Empty() *Catalog { return New(nil, nil) }

func (c *Catalog) Venue(id int) (Venue, bool) {
	if c == nil {
		return Venue{}, false
	}
	i, ok := c.venueIdx[id]
	if !ok {
		return Venue{}, false
	}
	return c.Venues[i], true
}

func (c *Catalog) Event(id int) (Event, bool) {
	if c == nil {
		return Event{}, false
	}
	i, ok := c.eventIdx[id]
	if !ok {
		return Event{}, false
	}
	return c.Events[i], true
}

// EventsOn returns the events on an ISO date ordered by start time.
func (c *Catalog) EventsOn(date string) []Event {
	if c == nil {
		return nil
	}
	var out []Event
	for _, e := range c.Events {
		if e.IsoDate == date {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out
}

// Source loads a catalog once.
type Source interface {
	Load(ctx context.Context) (*Catalog, error)
}
