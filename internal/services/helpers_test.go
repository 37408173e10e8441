package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ohrid/internal/catalog"
	"ohrid/internal/planner"
	mem "ohrid/pkg/memcache"
)

type stubSource struct {
	cat *catalog.Catalog
	err error
}

func (s stubSource) Load(context.Context) (*catalog.Catalog, error) { return s.cat, s.err }

func intRef(v int) *int { return &v }

func testCatalog() *catalog.Catalog {
	return catalog.New(
		[]catalog.Venue{
			{ID: 1, Name: "Cafe Lake View", Type: catalog.StringList{"cafe", "breakfast"}, Tags: catalog.StringList{"family", "lake"}, Location: "Kej Makedonija"},
			{ID: 2, Name: "Icon Gallery", Type: catalog.StringList{"museum", "culture"}, Tags: catalog.StringList{"history", "unesco"}},
			{ID: 3, Name: "Old Bazaar Grill", Type: catalog.StringList{"restaurant"}, Tags: catalog.StringList{"traditional", "family"}},
			{ID: 4, Name: "Sunset Beach", Type: catalog.StringList{"beach", "relax"}, Tags: catalog.StringList{"relax", "sunset"}},
			{ID: 5, Name: "Jazz Inn", Type: catalog.StringList{"nightlife", "pub"}, Tags: catalog.StringList{"live music", "friends"}},
			{ID: 6, Name: "Pharmacy Centar", Type: catalog.StringList{"pharmacy"}},
		},
		[]catalog.Event{
			{ID: 10, EventName: "Ohrid Summer Festival", IsoDate: "2024-07-12", StartTime: "21:00", VenueID: intRef(2), LocationName: "Antique Theatre"},
			{ID: 11, EventName: "Swimming Marathon", IsoDate: "2024-07-12", StartTime: "morning"},
			{ID: 12, EventName: "Poetry Evenings", IsoDate: "2024-08-20", StartTime: "20:00"},
		},
	)
}

func newTestCatalogService(t *testing.T) CatalogServiceInterface {
	t.Helper()
	cs := NewCatalogService(stubSource{cat: testCatalog()}, zap.NewNop())
	require.NoError(t, cs.Load(context.Background()))
	return cs
}

func newTestEditor(t *testing.T) (*planner.Editor, *mem.Blobs) {
	t.Helper()
	blobs := mem.NewBlobs()
	store := planner.NewStore(context.Background(), blobs, planner.DefaultStorageKey, zap.NewNop())
	return planner.NewEditor(store), blobs
}

func skopje(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Skopje")
	require.NoError(t, err)
	return loc
}
