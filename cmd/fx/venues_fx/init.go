package venues_fx

import (
	"time"

	"go.uber.org/fx"

	"ohrid/internal/services"
)

var Module = fx.Provide(
	NewVenueService, services.NewTimeSlotService)

func NewVenueService(catalog services.CatalogServiceInterface, loc *time.Location) services.VenueServiceInterface {
	return services.NewVenueService(catalog, loc)
}
