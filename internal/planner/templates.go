package planner

import "strings"

// Slot is one activity window of a template.
type Slot struct {
	Kind  string   `json:"kind"`
	Types []string `json:"types"`
	Time  string   `json:"time"`
	Text  string   `json:"-"`
}

type Template struct {
	Name  string `json:"name"`
	Slots []Slot `json:"slots"`
}

// Option is a named interest or company choice and the venue tags it stands for.
type Option struct {
	Name string   `json:"name"`
	Tags []string `json:"tags"`
}

const (
	TemplateFullDay   = "Full Day"
	TemplateMorning   = "Morning"
	TemplateAfternoon = "Afternoon"
	TemplateEvening   = "Evening"

	InterestAdventure = "Adventure"

	MaxInterests = 3
	topPicks     = 5

	OldTownText = "Explore Ohrid's Old Town"
	NoPlanText  = "We couldn't generate a plan with these preferences. Try a different combination."
	NoPlanType  = "info"
	cultureType = "culture"
)

var (
	slotBreakfast = Slot{Kind: "breakfast", Types: []string{"breakfast", "coffee", "cafe"}, Time: "09:00", Text: "Breakfast at %s"}
	slotExplore   = Slot{Kind: "sightseeing", Types: []string{"museum", "historic", "culture", "adventure", "sports", "tours"}, Time: "11:00", Text: "Visit %s"}
	slotLunch     = Slot{Kind: "lunch", Types: []string{"lunch", "restaurant"}, Time: "14:00", Text: "Lunch at %s"}
	slotLeisure   = Slot{Kind: "leisure", Types: []string{"relax", "beach", "shopping"}, Time: "16:00", Text: "Unwind at %s"}
	slotDinner    = Slot{Kind: "dinner", Types: []string{"dinner", "restaurant"}, Time: "20:00", Text: "Dinner at %s"}
	slotNightlife = Slot{Kind: "nightlife", Types: []string{"nightlife", "pub", "club"}, Time: "22:00", Text: "Drinks at %s"}
)

// AdventureTypes are the venue types that count as genuine adventure activities.
var AdventureTypes = []string{"adventure", "sports", "tours", "hiking", "kayaking", "paragliding", "diving"}

var templates = []Template{
	{Name: TemplateFullDay, Slots: []Slot{slotBreakfast, slotExplore, slotLunch, slotLeisure, slotDinner, slotNightlife}},
	{Name: TemplateMorning, Slots: []Slot{slotBreakfast, slotExplore}},
	{Name: TemplateAfternoon, Slots: []Slot{slotLunch, slotLeisure}},
	{Name: TemplateEvening, Slots: []Slot{slotDinner, slotNightlife}},
}

var interests = []Option{
	{Name: "History & Culture", Tags: []string{"history", "culture", "heritage", "unesco", "architecture", "museum"}},
	{Name: "Nature", Tags: []string{"nature", "lake", "scenic", "park", "views", "outdoor"}},
	{Name: "Food & Wine", Tags: []string{"local cuisine", "traditional", "wine", "seafood", "trout", "food"}},
	{Name: "Nightlife", Tags: []string{"nightlife", "bar", "live music", "party", "cocktails"}},
	{Name: InterestAdventure, Tags: []string{"adventure", "hiking", "kayaking", "paragliding", "diving", "sports"}},
	{Name: "Relaxation", Tags: []string{"relax", "beach", "spa", "quiet", "sunset"}},
	{Name: "Shopping", Tags: []string{"shopping", "souvenirs", "crafts", "pearls", "market"}},
}

var companies = []Option{
	{Name: "Solo", Tags: []string{"solo", "budget", "quiet"}},
	{Name: "Couple", Tags: []string{"romantic", "couple", "sunset", "fine dining"}},
	{Name: "Family", Tags: []string{"family", "kids", "family-friendly"}},
	{Name: "Friends", Tags: []string{"friends", "group", "party"}},
}

func Templates() []Template { return templates }
func Interests() []Option   { return interests }
func Companies() []Option   { return companies }

func findTemplate(name string) (Template, bool) {
	for _, t := range templates {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return Template{}, false
}

func findOption(opts []Option, name string) (Option, bool) {
	for _, o := range opts {
		if strings.EqualFold(o.Name, name) {
			return o, true
		}
	}
	return Option{}, false
}
