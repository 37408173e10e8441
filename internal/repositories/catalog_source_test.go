package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ohrid/internal/catalog"
	"ohrid/internal/models/db_models"
)

type stubVenueRepo struct {
	rows     []db_models.Venue
	err      error
	upserted []db_models.Venue
}

func (s *stubVenueRepo) Upsert(_ context.Context, v []db_models.Venue) error {
	s.upserted = append(s.upserted, v...)
	return nil
}

func (s *stubVenueRepo) GetByID(_ context.Context, id int) (*db_models.Venue, error) {
	for i := range s.rows {
		if s.rows[i].ID == id {
			return &s.rows[i], nil
		}
	}
	return nil, nil
}

func (s *stubVenueRepo) ListAll(context.Context) ([]db_models.Venue, error) { return s.rows, s.err }

type stubEventRepo struct {
	rows     []db_models.Event
	err      error
	upserted []db_models.Event
}

func (s *stubEventRepo) Upsert(_ context.Context, e []db_models.Event) error {
	s.upserted = append(s.upserted, e...)
	return nil
}

func (s *stubEventRepo) ListAll(context.Context) ([]db_models.Event, error) { return s.rows, s.err }

func (s *stubEventRepo) ListByDate(context.Context, string) ([]db_models.Event, error) {
	return s.rows, s.err
}

func TestDBCatalogSource_MapsRows(t *testing.T) {
	venueID := 3
	src := NewDBCatalogSource(
		&stubVenueRepo{rows: []db_models.Venue{{ID: 3, Name: "Kaneo", Types: []string{"restaurant"}, Tags: []string{"lake", "views"}, Rating: 4.5}}},
		&stubEventRepo{rows: []db_models.Event{{ID: 1, EventName: "Summer Festival", IsoDate: "2024-07-12", StartTime: "21:00", VenueID: &venueID}}},
	)

	c, err := src.Load(context.Background())
	require.NoError(t, err)

	v, ok := c.Venue(3)
	require.True(t, ok)
	assert.Equal(t, catalog.StringList{"restaurant"}, v.Type)
	assert.Equal(t, catalog.StringList{"lake", "views"}, v.Tags)

	e, ok := c.Event(1)
	require.True(t, ok)
	assert.Equal(t, 3, *e.VenueID)
}

func TestDBCatalogSource_EventFailureKeepsVenues(t *testing.T) {
	src := NewDBCatalogSource(
		&stubVenueRepo{rows: []db_models.Venue{{ID: 1, Name: "Cafe"}}},
		&stubEventRepo{err: errors.New("relation does not exist")},
	)

	c, err := src.Load(context.Background())
	assert.Error(t, err)
	assert.Len(t, c.Venues, 1)
	assert.Empty(t, c.Events)
}

func TestDBCatalogSource_Seed(t *testing.T) {
	venues, events := &stubVenueRepo{}, &stubEventRepo{}
	src := NewDBCatalogSource(venues, events)

	err := src.Seed(context.Background(), catalog.New(
		[]catalog.Venue{{ID: 7, Name: "Pharmacy", Type: catalog.StringList{"pharmacy"}}},
		[]catalog.Event{{ID: 2, EventName: "Concert", IsoDate: "2024-08-01"}},
	))
	require.NoError(t, err)

	require.Len(t, venues.upserted, 1)
	assert.Equal(t, []string{"pharmacy"}, []string(venues.upserted[0].Types))
	require.Len(t, events.upserted, 1)
	assert.Equal(t, "Concert", events.upserted[0].EventName)
}
