package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ohrid/internal/api/controllers"
	"ohrid/pkg/logger"
	"ohrid/pkg/middleware"
	"ohrid/pkg/utils"
)

type Controllers struct {
	Plans     *controllers.PlanController
	Itinerary *controllers.ItineraryController
	Venues    *controllers.VenuesController
	TimeSlots *controllers.TimeSlotController
}

func NewRouter(log *zap.Logger, ctrl Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(logger.GinMiddleware(log))

	RegisterRoutes(r, ctrl)
	return r
}

func RegisterRoutes(r *gin.Engine, ctrl Controllers) {
	r.GET("/health", func(c *gin.Context) {
		utils.RespondSuccess(c, gin.H{"ok": true}, "")
	})
	r.NoRoute(func(c *gin.Context) {
		utils.RespondError(c, http.StatusNotFound, "Route not found")
	})

	r.GET("/timeslots", ctrl.TimeSlots.ListSlots)

	plans := r.Group("/plans")
	plans.GET("", ctrl.Plans.GetPlan)
	plans.POST("/import", ctrl.Plans.Import)
	plans.GET("/:date", ctrl.Plans.GetDay)
	plans.DELETE("/:date", ctrl.Plans.ClearDay)
	plans.POST("/:date/items", ctrl.Plans.AddItem)
	plans.DELETE("/:date/items/:id", ctrl.Plans.RemoveItem)
	plans.POST("/:date/reorder", ctrl.Plans.Reorder)
	plans.POST("/:date/events/:eventId", ctrl.Plans.AddEvent)
	plans.GET("/:date/share", ctrl.Plans.Share)
	plans.GET("/:date/ical", ctrl.Plans.ExportICal)

	itinerary := r.Group("/itinerary")
	itinerary.GET("/options", ctrl.Itinerary.Options)
	itinerary.GET("/session", ctrl.Itinerary.Session)
	itinerary.POST("/session/start", ctrl.Itinerary.Start)
	itinerary.PUT("/session/selection", ctrl.Itinerary.Select)
	itinerary.POST("/session/generate", ctrl.Itinerary.Generate)
	itinerary.POST("/session/start-over", ctrl.Itinerary.StartOver)
	itinerary.POST("/session/suggestions/:index/toggle", ctrl.Itinerary.ToggleSuggestion)

	r.GET("/venues", ctrl.Venues.ListVenues)
	r.GET("/venues/:id", ctrl.Venues.GetVenue)
	r.GET("/events", ctrl.Venues.ListEvents)
}
