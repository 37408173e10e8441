package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ohrid/internal/models/request_models"
	"ohrid/internal/services"
	"ohrid/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

func (i *ItineraryController) Options(c *gin.Context) {
	utils.RespondSuccess(c, i.itineraryService.Options(), "Itinerary options fetched successfully")
}

func (i *ItineraryController) Session(c *gin.Context) {
	utils.RespondSuccess(c, i.itineraryService.Session(), "Session fetched successfully")
}

func (i *ItineraryController) Start(c *gin.Context) {
	s, err := i.itineraryService.Start()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, s, "Session started")
}

// Select godoc
// @Summary Set interests, company and template
// @Description Up to three interests. Partial selections are kept until generate.
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param body body request_models.SelectionRequest true "Selection"
// @Success 200 {object} response_models.SessionResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /itinerary/session/selection [put]
func (i *ItineraryController) Select(c *gin.Context) {
	var req request_models.SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	s, err := i.itineraryService.Select(req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, s, "Selection saved")
}

func (i *ItineraryController) Generate(c *gin.Context) {
	s, err := i.itineraryService.Generate(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, s, "Itinerary generated")
}

func (i *ItineraryController) StartOver(c *gin.Context) {
	utils.RespondSuccess(c, i.itineraryService.StartOver(), "Session reset")
}

// ToggleSuggestion adds a suggestion to the plan, or removes it when its venue is already planned.
func (i *ItineraryController) ToggleSuggestion(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid suggestion index")
		return
	}

	var req request_models.ToggleSuggestionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	res, err := i.itineraryService.ToggleSuggestion(c.Request.Context(), index, req.Date)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	msg := "Suggestion added to plan"
	if !res.Added {
		msg = "Suggestion removed from plan"
	}
	utils.RespondSuccess(c, res, msg)
}
