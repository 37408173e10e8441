package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ohrid/internal/models/response_models"
	"ohrid/internal/services"
	"ohrid/pkg/utils"
)

type VenuesController struct {
	venueService   services.VenueServiceInterface
	catalogService services.CatalogServiceInterface
}

func NewVenuesController(venueService services.VenueServiceInterface, catalogService services.CatalogServiceInterface) *VenuesController {
	return &VenuesController{
		venueService:   venueService,
		catalogService: catalogService,
	}
}

// ListVenues godoc
// @Summary Venues in rotation order
// @Description Venues grouped by category, ordered for the time bucket and weekday of "at"
// @Tags Venues
// @Produce json
// @Param at query string false "RFC3339 or YYYY-MM-DDTHH:MM local time (default: now)"
// @Success 200 {object} response_models.VenueListingResponse
// @Failure 400 {object} utils.APIResponse
// @Router /venues [get]
func (v *VenuesController) ListVenues(c *gin.Context) {
	listing, err := v.venueService.Listing(c.Query("at"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, listing, "Venues fetched successfully")
}

func (v *VenuesController) GetVenue(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid venue id")
		return
	}

	venue, err := v.venueService.GetVenue(id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, venue, "Venue fetched successfully")
}

func (v *VenuesController) ListEvents(c *gin.Context) {
	date := c.Query("date")
	events, err := v.catalogService.ListEvents(date)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.EventsResponse{Date: date, Events: events}, "Events fetched successfully")
}
