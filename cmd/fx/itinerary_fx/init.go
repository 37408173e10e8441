package itinerary_fx

import (
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"ohrid/internal/planner"
	"ohrid/internal/services"
)

var Module = fx.Provide(
	NewItineraryService)

func NewItineraryService(
	recommender *planner.Recommender,
	editor *planner.Editor,
	catalog services.CatalogServiceInterface,
	loc *time.Location,
	log *zap.Logger,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(recommender, editor, catalog, loc, log.Named("itinerary"))
}
