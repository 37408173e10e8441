package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"ohrid/internal/models/request_models"
	"ohrid/internal/models/response_models"
	"ohrid/internal/planner"
	"ohrid/pkg/utils"
)

type PlanServiceInterface interface {
	GetPlan(ctx context.Context) planner.Plan
	GetDay(ctx context.Context, date string) (response_models.PlanDayResponse, error)
	AddItem(ctx context.Context, date string, req request_models.AddItemRequest) (planner.PlanItem, error)
	AddEvent(ctx context.Context, date string, eventID int) (planner.PlanItem, error)
	RemoveItem(ctx context.Context, date string, id int64) error
	Reorder(ctx context.Context, date string, from, to int) (response_models.ReorderResponse, error)
	ClearDay(ctx context.Context, date string) error
	Share(ctx context.Context, date string) (response_models.ShareResponse, error)
	Import(ctx context.Context, token string) (response_models.PlanDayResponse, error)
	ExportICal(ctx context.Context, date string) ([]byte, error)
}

type PlanService struct {
	editor       *planner.Editor
	catalog      CatalogServiceInterface
	shareBaseURL string
	loc          *time.Location
}

func NewPlanService(editor *planner.Editor, catalog CatalogServiceInterface, shareBaseURL string, loc *time.Location) PlanServiceInterface {
	return &PlanService{
		editor:       editor,
		catalog:      catalog,
		shareBaseURL: shareBaseURL,
		loc:          loc,
	}
}

func (p *PlanService) GetPlan(ctx context.Context) planner.Plan {
	return p.editor.Store().Snapshot()
}

func (p *PlanService) GetDay(ctx context.Context, date string) (response_models.PlanDayResponse, error) {
	if err := validateDate(date); err != nil {
		return response_models.PlanDayResponse{}, err
	}
	return p.day(date), nil
}

func (p *PlanService) AddItem(ctx context.Context, date string, req request_models.AddItemRequest) (planner.PlanItem, error) {
	if err := validateDate(date); err != nil {
		return planner.PlanItem{}, err
	}
	if req.Time == "" {
		req.Time = planner.AnyTime
	}
	if !planner.ValidTime(req.Time) {
		return planner.PlanItem{}, fmt.Errorf("%w: %q", utils.ErrInvalidTime, req.Time)
	}
	if strings.TrimSpace(req.ActivityType) == "" {
		return planner.PlanItem{}, fmt.Errorf("%w: activityType is required", utils.ErrInvalidRequest)
	}
	if req.VenueID != nil {
		if _, err := p.catalog.GetVenue(*req.VenueID); err != nil {
			return planner.PlanItem{}, err
		}
	}

	item := planner.PlanItem{
		ActivityType: strings.TrimSpace(req.ActivityType),
		VenueID:      req.VenueID,
		Time:         req.Time,
		Notes:        req.Notes,
	}
	return p.editor.Add(ctx, date, item), nil
}

// AddEvent plans a catalog event on date. Events without a usable start time become "Any time".
func (p *PlanService) AddEvent(ctx context.Context, date string, eventID int) (planner.PlanItem, error) {
	if err := validateDate(date); err != nil {
		return planner.PlanItem{}, err
	}
	event, err := p.catalog.GetEvent(eventID)
	if err != nil {
		return planner.PlanItem{}, err
	}

	start := event.StartTime
	if !planner.ValidTime(start) {
		start = planner.AnyTime
	}
	notes := event.EventName
	if event.LocationName != "" {
		notes = fmt.Sprintf("%s @ %s", event.EventName, event.LocationName)
	}

	// Events may name a venue the catalog does not hold. Keep the event without it.
	venueID := event.VenueID
	if venueID != nil {
		if _, err := p.catalog.GetVenue(*venueID); err != nil {
			venueID = nil
		}
	}

	item := planner.PlanItem{
		ActivityType: "Event",
		VenueID:      venueID,
		Time:         start,
		Notes:        notes,
		IsEvent:      true,
	}
	return p.editor.Add(ctx, date, item), nil
}

func (p *PlanService) RemoveItem(ctx context.Context, date string, id int64) error {
	if err := validateDate(date); err != nil {
		return err
	}
	if !p.editor.Remove(ctx, date, id) {
		return fmt.Errorf("%w: id %d on %s", utils.ErrItemNotFound, id, date)
	}
	return nil
}

// Reorder never fails on out-of-range indices; it reports moved=false instead.
func (p *PlanService) Reorder(ctx context.Context, date string, from, to int) (response_models.ReorderResponse, error) {
	if err := validateDate(date); err != nil {
		return response_models.ReorderResponse{}, err
	}
	moved := p.editor.Reorder(ctx, date, from, to)
	return response_models.ReorderResponse{Moved: moved, Items: p.day(date).Items}, nil
}

func (p *PlanService) ClearDay(ctx context.Context, date string) error {
	if err := validateDate(date); err != nil {
		return err
	}
	p.editor.Clear(ctx, date)
	return nil
}

func (p *PlanService) Share(ctx context.Context, date string) (response_models.ShareResponse, error) {
	if err := validateDate(date); err != nil {
		return response_models.ShareResponse{}, err
	}
	token, err := planner.EncodeShare(planner.SharedPlan{Date: date, Items: p.editor.Store().Items(date)})
	if err != nil {
		return response_models.ShareResponse{}, err
	}
	return response_models.ShareResponse{Date: date, Token: token, URL: p.shareURL(token)}, nil
}

// Import replaces the token's date with its items. The token may also be a full share link.
// Every referenced venue must be in the catalog, otherwise the plan is left alone.
func (p *PlanService) Import(ctx context.Context, token string) (response_models.PlanDayResponse, error) {
	shared, err := planner.DecodeShare(tokenFromLink(token))
	if err != nil {
		return response_models.PlanDayResponse{}, plannerError(err)
	}
	if err := validateDate(shared.Date); err != nil {
		return response_models.PlanDayResponse{}, fmt.Errorf("%w: %w", utils.ErrInvalidShareToken, err)
	}
	for _, it := range shared.Items {
		if !planner.ValidTime(it.Time) && it.Time != "" {
			return response_models.PlanDayResponse{}, fmt.Errorf("%w: item time %q", utils.ErrInvalidShareToken, it.Time)
		}
		if it.VenueID != nil {
			if _, err := p.catalog.GetVenue(*it.VenueID); err != nil {
				return response_models.PlanDayResponse{}, fmt.Errorf("%w: venue %d: %w", utils.ErrInvalidShareToken, *it.VenueID, err)
			}
		}
	}

	items := p.editor.Replace(ctx, shared.Date, shared.Items)
	return response_models.PlanDayResponse{Date: shared.Date, Items: items}, nil
}

// ExportICal renders the date's items as an iCalendar document. Timed items last an hour;
// night items before 05:00 fall on the following calendar day.
func (p *PlanService) ExportICal(ctx context.Context, date string) ([]byte, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}
	day, err := time.ParseInLocation(utils.DateLayout, date, p.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", utils.ErrInvalidDate, date)
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//Ohrid Day Planner//EN")
	cal.SetXWRCalName("Ohrid plan " + date)
	cal.SetXWRTimezone(p.loc.String())

	now := time.Now().UTC()
	c := p.catalog.Catalog()
	for _, it := range p.editor.Store().Items(date) {
		ev := cal.AddEvent(fmt.Sprintf("%s-%d@ohrid-planner", date, it.ID))
		ev.SetDtStampTime(now)
		ev.SetSummary(itemSummary(it))
		ev.SetDescription(it.ActivityType)
		if it.VenueID != nil {
			if v, ok := c.Venue(*it.VenueID); ok {
				ev.SetLocation(strings.TrimSpace(v.Name + ", " + v.Location))
			}
		}

		if it.Time == planner.AnyTime {
			ev.SetAllDayStartAt(day)
			ev.SetAllDayEndAt(day.AddDate(0, 0, 1))
			continue
		}
		clock, err := time.Parse("15:04", it.Time)
		if err != nil {
			ev.SetAllDayStartAt(day)
			ev.SetAllDayEndAt(day.AddDate(0, 0, 1))
			continue
		}
		start := time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, p.loc)
		if clock.Hour() < 5 {
			start = start.AddDate(0, 0, 1)
		}
		ev.SetStartAt(start)
		ev.SetEndAt(start.Add(time.Hour))
	}

	return []byte(cal.Serialize()), nil
}

func (p *PlanService) day(date string) response_models.PlanDayResponse {
	items := p.editor.Store().Items(date)
	if items == nil {
		items = []planner.PlanItem{}
	}
	return response_models.PlanDayResponse{Date: date, Items: items}
}

func (p *PlanService) shareURL(token string) string {
	if p.shareBaseURL == "" {
		return ""
	}
	u, err := url.Parse(p.shareBaseURL)
	if err != nil {
		return ""
	}
	q := u.Query()
	q.Set(planner.ShareParam, token)
	u.RawQuery = q.Encode()
	return u.String()
}

func tokenFromLink(s string) string {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "?") {
		return s
	}
	u, err := url.Parse(s)
	if err != nil {
		return s
	}
	if t := u.Query().Get(planner.ShareParam); t != "" {
		return t
	}
	return s
}

func itemSummary(it planner.PlanItem) string {
	if it.Notes != "" {
		return it.Notes
	}
	return it.ActivityType
}
