package repositories

import (
	"context"
	"errors"
	"fmt"

	"ohrid/internal/catalog"
	"ohrid/internal/models/db_models"
)

// DBCatalogSource reads the catalog from the venues and events tables.
type DBCatalogSource struct {
	venues VenueRepository
	events EventRepository
}

func NewDBCatalogSource(venues VenueRepository, events EventRepository) *DBCatalogSource {
	return &DBCatalogSource{venues: venues, events: events}
}

// Load reads both tables; a failure in one does not hide the other.
func (s *DBCatalogSource) Load(ctx context.Context) (*catalog.Catalog, error) {
	var errs []error

	venueRows, err := s.venues.ListAll(ctx)
	if err != nil {
		errs = append(errs, fmt.Errorf("load venues: %w", err))
	}
	eventRows, err := s.events.ListAll(ctx)
	if err != nil {
		errs = append(errs, fmt.Errorf("load events: %w", err))
	}

	venues := make([]catalog.Venue, 0, len(venueRows))
	for _, v := range venueRows {
		venues = append(venues, VenueToCatalog(v))
	}
	events := make([]catalog.Event, 0, len(eventRows))
	for _, e := range eventRows {
		events = append(events, EventToCatalog(e))
	}

	return catalog.New(venues, events), errors.Join(errs...)
}

// Seed copies a catalog into the tables.
func (s *DBCatalogSource) Seed(ctx context.Context, c *catalog.Catalog) error {
	venues := make([]db_models.Venue, 0, len(c.Venues))
	for _, v := range c.Venues {
		venues = append(venues, VenueFromCatalog(v))
	}
	if err := s.venues.Upsert(ctx, venues); err != nil {
		return err
	}

	events := make([]db_models.Event, 0, len(c.Events))
	for _, e := range c.Events {
		events = append(events, EventFromCatalog(e))
	}
	return s.events.Upsert(ctx, events)
}
