package planner

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"

	"ohrid/internal/catalog"
)

// Rand is the random source used to pick among the top candidates.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

type Selection struct {
	Interests []string `json:"interests"`
	Company   string   `json:"company"`
	Template  string   `json:"template"`
}

type Suggestion struct {
	VenueID *int   `json:"venueId"`
	Time    string `json:"time"`
	Text    string `json:"text"`
	Type    string `json:"type"`
}

// Acceptable reports whether the suggestion can become a plan item.
func (s Suggestion) Acceptable() bool { return s.Type != NoPlanType }

type ScoredVenue struct {
	Venue catalog.Venue
	Score int
}

type resolvedSelection struct {
	interestTags map[string]struct{}
	companyTags  map[string]struct{}
	template     Template
	adventure    bool
}

// Validate checks the selection is complete and only names known options.
func (s Selection) Validate() error {
	_, err := s.resolve()
	return err
}

func (s Selection) resolve() (resolvedSelection, error) {
	if len(s.Interests) > MaxInterests {
		return resolvedSelection{}, ErrTooManyInterests
	}
	if len(s.Interests) == 0 || s.Company == "" || s.Template == "" {
		return resolvedSelection{}, ErrIncompleteSelection
	}

	r := resolvedSelection{
		interestTags: map[string]struct{}{},
		companyTags:  map[string]struct{}{},
	}
	for _, name := range s.Interests {
		opt, ok := findOption(interests, name)
		if !ok {
			return resolvedSelection{}, fmt.Errorf("%w: interest %q", ErrUnknownOption, name)
		}
		addTags(r.interestTags, opt.Tags)
		if opt.Name == InterestAdventure {
			r.adventure = true
		}
	}
	company, ok := findOption(companies, s.Company)
	if !ok {
		return resolvedSelection{}, fmt.Errorf("%w: company %q", ErrUnknownOption, s.Company)
	}
	addTags(r.companyTags, company.Tags)

	tpl, ok := findTemplate(s.Template)
	if !ok {
		return resolvedSelection{}, fmt.Errorf("%w: template %q", ErrUnknownOption, s.Template)
	}
	r.template = tpl
	return r, nil
}

type Recommender struct {
	rnd Rand
}

// NewRecommender builds a recommender; a nil source falls back to the global generator.
func NewRecommender(rnd Rand) *Recommender {
	if rnd == nil {
		rnd = globalRand{}
	}
	return &Recommender{rnd: rnd}
}

// Score ranks venues by interest (weight 1) and company (weight 3) tag overlap.
// Zero scores are dropped; ties keep catalog order.
func Score(venues []catalog.Venue, interestTags, companyTags map[string]struct{}) []ScoredVenue {
	out := make([]ScoredVenue, 0, len(venues))
	for _, v := range venues {
		tags := map[string]struct{}{}
		addTags(tags, v.Tags)

		score := 0
		for t := range tags {
			if _, ok := interestTags[t]; ok {
				score++
			}
			if _, ok := companyTags[t]; ok {
				score += 3
			}
		}
		if score > 0 {
			out = append(out, ScoredVenue{Venue: v, Score: score})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// Generate expands the selected template into dated suggestions. No venue repeats
// within one itinerary.
func (r *Recommender) Generate(venues []catalog.Venue, sel Selection) ([]Suggestion, error) {
	res, err := sel.resolve()
	if err != nil {
		return nil, err
	}

	scored := Score(venues, res.interestTags, res.companyTags)
	used := map[int]struct{}{}
	var out []Suggestion

	for _, slot := range res.template.Slots {
		var candidates []catalog.Venue
		if adv := intersect(slot.Types, AdventureTypes); res.adventure && len(adv) > 0 {
			for _, v := range venues {
				if _, seen := used[v.ID]; !seen && v.HasType(adv...) {
					candidates = append(candidates, v)
				}
			}
		} else {
			for _, sv := range scored {
				if _, seen := used[sv.Venue.ID]; !seen && sv.Venue.HasType(slot.Types...) {
					candidates = append(candidates, sv.Venue)
				}
			}
		}

		if len(candidates) > 0 {
			n := min(len(candidates), topPicks)
			pick := candidates[r.rnd.IntN(n)]
			used[pick.ID] = struct{}{}
			id := pick.ID
			out = append(out, Suggestion{
				VenueID: &id,
				Time:    slot.Time,
				Text:    fmt.Sprintf(slot.Text, pick.Name),
				Type:    slot.Kind,
			})
			continue
		}

		if contains(slot.Types, cultureType) {
			out = append(out, Suggestion{Time: slot.Time, Text: OldTownText, Type: slot.Kind})
		}
	}

	if len(out) == 0 {
		out = append(out, Suggestion{Text: NoPlanText, Type: NoPlanType})
	}
	return out, nil
}

// TagSet normalises tags into the set form Score expects.
func TagSet(tags ...string) map[string]struct{} {
	set := map[string]struct{}{}
	addTags(set, tags)
	return set
}

func addTags(dst map[string]struct{}, tags []string) {
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			dst[t] = struct{}{}
		}
	}
}

func intersect(a, b []string) []string {
	var out []string
	for _, x := range a {
		if contains(b, x) {
			out = append(out, x)
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if strings.EqualFold(x, s) {
			return true
		}
	}
	return false
}
