package planner

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"ohrid/internal/catalog"
)

type Category string

const (
	CategoryServices      Category = "services"
	CategoryHealthMedical Category = "health-medical"
	CategoryAdventure     Category = "adventure-sports"
	CategoryRecreation    Category = "recreation-tours"
	CategoryNightlife     Category = "nightlife-entertainment"
	CategoryCoffee        Category = "coffee-cafes"
	CategoryFood          Category = "food-dining"
)

type TimeBucket string

const (
	BucketMorning   TimeBucket = "morning"
	BucketLunch     TimeBucket = "lunch"
	BucketAfternoon TimeBucket = "afternoon"
	BucketEvening   TimeBucket = "evening"
	BucketLateNight TimeBucket = "lateNight"
)

var baseOrders = map[TimeBucket][]Category{
	BucketMorning:   {CategoryCoffee, CategoryFood, CategoryRecreation, CategoryAdventure, CategoryServices, CategoryHealthMedical, CategoryNightlife},
	BucketLunch:     {CategoryFood, CategoryCoffee, CategoryRecreation, CategoryAdventure, CategoryServices, CategoryHealthMedical, CategoryNightlife},
	BucketAfternoon: {CategoryRecreation, CategoryAdventure, CategoryCoffee, CategoryFood, CategoryServices, CategoryHealthMedical, CategoryNightlife},
	BucketEvening:   {CategoryFood, CategoryNightlife, CategoryRecreation, CategoryCoffee, CategoryAdventure, CategoryServices, CategoryHealthMedical},
	BucketLateNight: {CategoryNightlife, CategoryFood, CategoryHealthMedical, CategoryServices, CategoryCoffee, CategoryRecreation, CategoryAdventure},
}

// weekendDelta is added to a category's rank score on Friday, Saturday and Sunday.
var weekendDelta = map[Category]int{
	CategoryRecreation:    15,
	CategoryAdventure:     15,
	CategoryNightlife:     10,
	CategoryFood:          5,
	CategoryCoffee:        0,
	CategoryServices:      -15,
	CategoryHealthMedical: -15,
}

const rankStep = 10

// classification rules in precedence order; the first match wins.
var classRules = []struct {
	category Category
	types    []string
}{
	{CategoryServices, []string{"services", "service", "transport", "rental", "travel agency", "bank", "atm"}},
	{CategoryHealthMedical, []string{"health", "medical", "pharmacy", "hospital", "clinic", "dentist"}},
	{CategoryAdventure, []string{"adventure", "sports", "diving", "paragliding", "kayaking", "hiking"}},
	{CategoryRecreation, []string{"recreation", "tours", "tour", "boat", "beach", "park", "museum", "historic", "church"}},
	{CategoryNightlife, []string{"nightlife", "entertainment", "club", "pub", "bar", "live music"}},
	{CategoryCoffee, []string{"cafe", "coffee", "bakery", "breakfast"}},
}

var barTypes = []string{"club", "pub", "bar"}

// BucketAt maps a local clock time to its time bucket.
func BucketAt(t time.Time) TimeBucket {
	switch h := t.Hour(); {
	case h >= 6 && h < 11:
		return BucketMorning
	case h >= 11 && h < 14:
		return BucketLunch
	case h >= 14 && h < 18:
		return BucketAfternoon
	case h >= 18 && h < 23:
		return BucketEvening
	default:
		return BucketLateNight
	}
}

func IsWeekend(t time.Time) bool {
	switch t.Weekday() {
	case time.Friday, time.Saturday, time.Sunday:
		return true
	}
	return false
}

// CategoryOrder returns the category priority for the given local time.
func CategoryOrder(t time.Time) []Category {
	base := baseOrders[BucketAt(t)]
	order := make([]Category, len(base))
	copy(order, base)
	if !IsWeekend(t) {
		return order
	}

	score := make(map[Category]int, len(order))
	for i, c := range order {
		score[c] = (len(order)-i)*rankStep + weekendDelta[c]
	}
	sort.SliceStable(order, func(i, j int) bool { return score[order[i]] > score[order[j]] })
	return order
}

// Classify assigns a venue to exactly one category, defaulting to food-dining.
func Classify(v catalog.Venue) Category {
	for _, rule := range classRules {
		if !v.HasType(rule.types...) {
			continue
		}
		if rule.category == CategoryCoffee && v.HasType(barTypes...) {
			continue
		}
		return rule.category
	}
	return CategoryFood
}

type CategoryGroup struct {
	Category Category        `json:"category"`
	Venues   []catalog.Venue `json:"venues"`
}

// Listing groups venues by category in rotation order for time t, each group
// sorted by name. Venues whose category is not in the order come last.
func Listing(venues []catalog.Venue, t time.Time) ([]CategoryGroup, []catalog.Venue) {
	byCat := map[Category][]catalog.Venue{}
	for _, v := range venues {
		c := Classify(v)
		byCat[c] = append(byCat[c], v)
	}

	var groups []CategoryGroup
	for _, c := range CategoryOrder(t) {
		vs, ok := byCat[c]
		if !ok {
			continue
		}
		delete(byCat, c)
		sortByName(vs)
		groups = append(groups, CategoryGroup{Category: c, Venues: vs})
	}

	var rest []catalog.Venue
	for _, vs := range byCat {
		rest = append(rest, vs...)
	}
	sortByName(rest)
	return groups, rest
}

// Rotate flattens Listing into one ordered venue list.
func Rotate(venues []catalog.Venue, t time.Time) []catalog.Venue {
	groups, rest := Listing(venues, t)
	out := make([]catalog.Venue, 0, len(venues))
	for _, g := range groups {
		out = append(out, g.Venues...)
	}
	return append(out, rest...)
}

func sortByName(vs []catalog.Venue) {
	col := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(vs, func(i, j int) bool {
		if c := col.CompareString(vs[i].Name, vs[j].Name); c != 0 {
			return c < 0
		}
		return vs[i].ID < vs[j].ID
	})
}
