package services

import (
	"fmt"
	"sync"
	"time"

	"ohrid/internal/catalog"
	"ohrid/internal/models/response_models"
	"ohrid/internal/planner"
	"ohrid/pkg/utils"
)

type VenueServiceInterface interface {
	// Listing returns the rotated venue listing for at; empty means now.
	Listing(at string) (response_models.VenueListingResponse, error)
	GetVenue(id int) (catalog.Venue, error)
	// Refresh recomputes the cached listing for now.
	Refresh(now time.Time) response_models.VenueListingResponse
}

type VenueService struct {
	catalog CatalogServiceInterface
	loc     *time.Location

	mu        sync.RWMutex
	cached    response_models.VenueListingResponse
	cachedKey string
	cachedFor *catalog.Catalog
}

func NewVenueService(catalog CatalogServiceInterface, loc *time.Location) VenueServiceInterface {
	return &VenueService{catalog: catalog, loc: loc}
}

func (s *VenueService) Listing(at string) (response_models.VenueListingResponse, error) {
	t, err := utils.ParseAt(at, s.loc)
	if err != nil {
		return response_models.VenueListingResponse{}, fmt.Errorf("%w: at must be RFC3339 or YYYY-MM-DDTHH:MM", utils.ErrInvalidRequest)
	}
	if at != "" {
		return s.build(s.catalog.Catalog(), t), nil
	}

	// The order only changes with the bucket and the weekend flag, so reuse the
	// cached listing while both match.
	c := s.catalog.Catalog()
	key := listingKey(t)
	s.mu.RLock()
	if s.cachedKey == key && s.cachedFor == c {
		out := s.cached
		s.mu.RUnlock()
		out.At = t.Format(time.RFC3339)
		return out, nil
	}
	s.mu.RUnlock()
	return s.Refresh(t), nil
}

func (s *VenueService) Refresh(now time.Time) response_models.VenueListingResponse {
	now = now.In(s.loc)
	c := s.catalog.Catalog()
	out := s.build(c, now)

	s.mu.Lock()
	s.cached = out
	s.cachedKey = listingKey(now)
	s.cachedFor = c
	s.mu.Unlock()
	return out
}

func (s *VenueService) GetVenue(id int) (catalog.Venue, error) {
	return s.catalog.GetVenue(id)
}

func (s *VenueService) build(c *catalog.Catalog, t time.Time) response_models.VenueListingResponse {
	groups, rest := planner.Listing(c.Venues, t)
	if groups == nil {
		groups = []planner.CategoryGroup{}
	}
	return response_models.VenueListingResponse{
		At:      t.Format(time.RFC3339),
		Bucket:  planner.BucketAt(t),
		Weekend: planner.IsWeekend(t),
		Groups:  groups,
		Other:   rest,
	}
}

func listingKey(t time.Time) string {
	if planner.IsWeekend(t) {
		return string(planner.BucketAt(t)) + "/weekend"
	}
	return string(planner.BucketAt(t)) + "/weekday"
}
