package services

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"

	"ohrid/internal/catalog"
	"ohrid/pkg/utils"
)

type CatalogServiceInterface interface {
	Load(ctx context.Context) error
	Catalog() *catalog.Catalog
	GetVenue(id int) (catalog.Venue, error)
	GetEvent(id int) (catalog.Event, error)
	ListEvents(date string) ([]catalog.Event, error)
}

type CatalogService struct {
	source  catalog.Source
	logger  *zap.Logger
	current atomic.Pointer[catalog.Catalog]
}

func NewCatalogService(source catalog.Source, logger *zap.Logger) CatalogServiceInterface {
	s := &CatalogService{source: source, logger: logger}
	s.current.Store(catalog.Empty())
	return s
}

// Load fetches the catalog once. Whatever loaded is kept even when part of it failed.
func (s *CatalogService) Load(ctx context.Context) error {
	c, err := s.source.Load(ctx)
	if c == nil {
		c = catalog.Empty()
	}
	s.current.Store(c)

	if err != nil {
		s.logger.Error("catalog load failed",
			zap.Error(err),
			zap.Int("venues", len(c.Venues)),
			zap.Int("events", len(c.Events)))
		return err
	}
	s.logger.Info("catalog loaded",
		zap.Int("venues", len(c.Venues)),
		zap.Int("events", len(c.Events)))
	return nil
}

func (s *CatalogService) Catalog() *catalog.Catalog {
	return s.current.Load()
}

func (s *CatalogService) GetVenue(id int) (catalog.Venue, error) {
	v, ok := s.Catalog().Venue(id)
	if !ok {
		return catalog.Venue{}, utils.ErrVenueNotFound
	}
	return v, nil
}

func (s *CatalogService) GetEvent(id int) (catalog.Event, error) {
	e, ok := s.Catalog().Event(id)
	if !ok {
		return catalog.Event{}, utils.ErrEventNotFound
	}
	return e, nil
}

// ListEvents returns one date's events, or every event when date is empty.
func (s *CatalogService) ListEvents(date string) ([]catalog.Event, error) {
	c := s.Catalog()
	if date == "" {
		return append([]catalog.Event{}, c.Events...), nil
	}
	if err := validateDate(date); err != nil {
		return nil, err
	}
	events := c.EventsOn(date)
	if events == nil {
		events = []catalog.Event{}
	}
	return events, nil
}
