package controllers_fx

import (
	"go.uber.org/fx"

	"ohrid/internal/api"
	"ohrid/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPlanController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewVenuesController),
	fx.Provide(controllers.NewTimeSlotController),
	fx.Provide(provideControllers),
	fx.Provide(api.NewRouter))

func provideControllers(
	plans *controllers.PlanController,
	itinerary *controllers.ItineraryController,
	venues *controllers.VenuesController,
	timeSlots *controllers.TimeSlotController,
) api.Controllers {
	return api.Controllers{
		Plans:     plans,
		Itinerary: itinerary,
		Venues:    venues,
		TimeSlots: timeSlots,
	}
}
