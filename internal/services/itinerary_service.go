package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"ohrid/internal/models/request_models"
	"ohrid/internal/models/response_models"
	"ohrid/internal/planner"
	"ohrid/pkg/utils"
)

type ItineraryServiceInterface interface {
	Options() response_models.ItineraryOptionsResponse
	Session() response_models.SessionResponse
	Start() (response_models.SessionResponse, error)
	Select(req request_models.SelectionRequest) (response_models.SessionResponse, error)
	Generate(ctx context.Context) (response_models.SessionResponse, error)
	StartOver() response_models.SessionResponse
	ToggleSuggestion(ctx context.Context, index int, date string) (response_models.ToggleResponse, error)
}

// ItineraryService drives the single wizard session. One mutex serialises every step.
type ItineraryService struct {
	mu          sync.Mutex
	session     *planner.Session
	recommender *planner.Recommender
	editor      *planner.Editor
	catalog     CatalogServiceInterface
	loc         *time.Location
	logger      *zap.Logger
}

func NewItineraryService(
	recommender *planner.Recommender,
	editor *planner.Editor,
	catalog CatalogServiceInterface,
	loc *time.Location,
	logger *zap.Logger,
) ItineraryServiceInterface {
	return &ItineraryService{
		session:     planner.NewSession(),
		recommender: recommender,
		editor:      editor,
		catalog:     catalog,
		loc:         loc,
		logger:      logger,
	}
}

func (s *ItineraryService) Options() response_models.ItineraryOptionsResponse {
	templates := planner.Templates()
	names := make([]string, 0, len(templates))
	for _, t := range templates {
		names = append(names, t.Name)
	}
	return response_models.ItineraryOptionsResponse{
		Interests:    planner.Interests(),
		Companies:    planner.Companies(),
		Templates:    names,
		MaxInterests: planner.MaxInterests,
	}
}

func (s *ItineraryService) Session() response_models.SessionResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *ItineraryService) Start() (response_models.SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.session.Start(); err != nil {
		return s.snapshot(), plannerError(err)
	}
	return s.snapshot(), nil
}

func (s *ItineraryService) Select(req request_models.SelectionRequest) (response_models.SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel := planner.Selection{Interests: req.Interests, Company: req.Company, Template: req.Template}
	if err := s.session.Select(sel); err != nil {
		return s.snapshot(), plannerError(err)
	}
	return s.snapshot(), nil
}

func (s *ItineraryService) Generate(ctx context.Context) (response_models.SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	venues := s.catalog.Catalog().Venues
	out, err := s.session.Generate(s.recommender, venues)
	if err != nil {
		return s.snapshot(), plannerError(err)
	}
	s.logger.Debug("itinerary generated",
		zap.String("template", s.session.Selection.Template),
		zap.Int("suggestions", len(out)),
		zap.Int("venues", len(venues)))
	return s.snapshot(), nil
}

func (s *ItineraryService) StartOver() response_models.SessionResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.StartOver()
	return s.snapshot()
}

// ToggleSuggestion adds the suggestion to date's plan, or removes the item already
// planned for the same venue.
func (s *ItineraryService) ToggleSuggestion(ctx context.Context, index int, date string) (response_models.ToggleResponse, error) {
	if date == "" {
		date = utils.Today(s.loc)
	}
	if err := validateDate(date); err != nil {
		return response_models.ToggleResponse{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sg, err := s.session.Suggestion(index)
	if err != nil {
		return response_models.ToggleResponse{}, plannerError(err)
	}
	item, err := planner.ItemFor(sg)
	if err != nil {
		return response_models.ToggleResponse{}, plannerError(err)
	}

	item, added := s.editor.ToggleVenue(ctx, date, item)
	return response_models.ToggleResponse{
		Added: added,
		Item:  item,
		Date:  date,
		Items: s.editor.Store().Items(date),
	}, nil
}

func (s *ItineraryService) snapshot() response_models.SessionResponse {
	suggestions := append([]planner.Suggestion{}, s.session.Suggestions...)
	sel := s.session.Selection
	sel.Interests = append([]string{}, sel.Interests...)
	return response_models.SessionResponse{
		State:       s.session.State,
		Selection:   sel,
		Suggestions: suggestions,
	}
}
